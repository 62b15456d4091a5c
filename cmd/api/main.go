package main

import (
	"fmt"
	"net/http"
	"os"

	"stockdex/internal/config"
	"stockdex/internal/database"
	"stockdex/internal/events"
	"stockdex/internal/handlers"
	"stockdex/internal/logger"
	"stockdex/internal/middleware"
	"stockdex/internal/services"
	"stockdex/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stockdex/internal/docs" // Import swagger docs
)

// @title           Stockdex API
// @version         1.0
// @description     Stockdex is a multi-tenant stock exchange game where users vote stocks up or down with ratings, comments, and labels.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the user token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	exchangeService := services.NewExchangeService(db)
	userService := services.NewUserService(db)
	stockService := services.NewStockService(db)
	labelService := services.NewLabelService(db)
	ledgerService := services.NewLedgerService(db, userService, events.NewLogPublisher())
	queryService := services.NewQueryService(db)

	// Initialize handlers
	exchangeHandler := handlers.NewExchangeHandler(exchangeService)
	userHandler := handlers.NewUserHandler()
	stockHandler := handlers.NewStockHandler(stockService, queryService)
	labelHandler := handlers.NewLabelHandler(labelService)
	voteHandler := handlers.NewVoteHandler(ledgerService, queryService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Vote casting stays outside the auth middleware: the ledger resolves
	// the token itself so a missing stock is reported before a bad token.
	v1.POST("/stocks/:id/votes", voteHandler.CastVote)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.TokenAuth(userService))

	// User profile
	protected.GET("/profile", userHandler.Profile)

	// Exchange routes
	exchanges := protected.Group("/exchanges")
	exchanges.GET("", exchangeHandler.ListExchanges)
	exchanges.GET("/:id", exchangeHandler.GetExchange)

	// Stock routes
	stocks := protected.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.GET("/:id", stockHandler.GetStock)
	stocks.GET("/:id/activity", stockHandler.GetStockActivity)
	stocks.GET("/:id/votes", voteHandler.ListStockVotes)

	// Vote log and label taxonomy
	protected.GET("/votes", voteHandler.ListVotes)
	protected.GET("/vote-labels", labelHandler.ListVoteLabels)

	log.Infof("Starting Stockdex backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
