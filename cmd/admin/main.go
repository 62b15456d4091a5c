// Command admin is the operator CLI for provisioning exchanges, users,
// stocks, and vote labels. Provisioning is deliberately kept off the HTTP
// API; tokens are minted here and handed to users out of band.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"gorm.io/gorm"

	"stockdex/internal/database"
	"stockdex/internal/logger"
	"stockdex/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(&newExchangeCmd{}, "provisioning")
	commander.Register(&newUserCmd{}, "provisioning")
	commander.Register(&newStockCmd{}, "provisioning")
	commander.Register(&newVoteLabelCmd{}, "provisioning")
	commander.Register(&listExchangesCmd{}, "reporting")
	commander.Register(&listStocksCmd{}, "reporting")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// openDB connects to the configured database for one command invocation.
func openDB() (*gorm.DB, error) {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return manager.DB(), nil
}

// registry bundles the provisioning services for command implementations.
type registry struct {
	exchanges services.ExchangeServicer
	users     services.UserServicer
	stocks    services.StockServicer
	labels    services.LabelServicer
}

func openRegistry() (*registry, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	return &registry{
		exchanges: services.NewExchangeService(db),
		users:     services.NewUserService(db),
		stocks:    services.NewStockService(db),
		labels:    services.NewLabelService(db),
	}, nil
}
