package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stockdex/internal/config"
	"stockdex/internal/database"
	"stockdex/internal/events"
	"stockdex/internal/gitlab"
	"stockdex/internal/logger"
	"stockdex/internal/services"

	"github.com/robfig/cron/v3"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Importer error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.GitlabURL == "" {
		return fmt.Errorf("GITLAB_URL is not set; nothing to import")
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	db := dbManager.DB()
	userService := services.NewUserService(db)
	stockService := services.NewStockService(db)
	ledgerService := services.NewLedgerService(db, userService, events.NopPublisher{})

	client := gitlab.NewClient(appConfig.GitlabURL, appConfig.GitlabToken)
	importer := gitlab.NewImporter(stockService, ledgerService, client)

	// One-shot mode for manual runs and cron-external scheduling.
	if len(os.Args) > 1 && os.Args[1] == "once" {
		return importer.Run(context.Background())
	}

	scheduler := cron.New(cron.WithSeconds())
	if _, err := scheduler.AddFunc(appConfig.ImportCron, func() {
		if err := importer.Run(context.Background()); err != nil {
			log.Errorf("scheduled import failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid IMPORT_CRON %q: %w", appConfig.ImportCron, err)
	}

	log.Infof("Starting activity importer with schedule %q", appConfig.ImportCron)
	scheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Stopping activity importer")
	<-scheduler.Stop().Done()
	return nil
}
