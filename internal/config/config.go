package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// External activity importer
	GitlabURL   string
	GitlabToken string
	ImportCron  string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "stockdex"),
		DBPassword: getEnv("DB_PASSWORD", "stockdex"),
		DBName:     getEnv("DB_NAME", "stockdex"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Importer; GITLAB_URL empty disables the feed.
		GitlabURL:   getEnv("GITLAB_URL", ""),
		GitlabToken: getEnv("GITLAB_TOKEN", ""),
		ImportCron:  getEnv("IMPORT_CRON", "0 30 23 * * *"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
