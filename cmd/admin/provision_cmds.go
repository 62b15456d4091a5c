package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type newExchangeCmd struct {
	name string
}

func (*newExchangeCmd) Name() string     { return "new-exchange" }
func (*newExchangeCmd) Synopsis() string { return "create a new exchange" }
func (*newExchangeCmd) Usage() string {
	return `new-exchange -name <name>

  Creates an exchange. Users and stocks always belong to exactly one
  exchange; create the exchange first.
`
}

func (c *newExchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Exchange name (required)")
}

func (c *newExchangeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	reg, err := openRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	exchange, err := reg.exchanges.CreateExchange(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating exchange: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created exchange %q with id %s\n", exchange.Name, exchange.ID)
	return subcommands.ExitSuccess
}

type newUserCmd struct {
	exchangeID string
	name       string
}

func (*newUserCmd) Name() string     { return "new-user" }
func (*newUserCmd) Synopsis() string { return "create a user and mint their token" }
func (*newUserCmd) Usage() string {
	return `new-user -exchange <exchange-id> -name <name>

  Creates a user in the given exchange and prints the minted token. The
  token is the user's only credential; hand it over out of band.
`
}

func (c *newUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exchangeID, "exchange", "", "Exchange ID (required)")
	f.StringVar(&c.name, "name", "", "User name (required)")
}

func (c *newUserCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.exchangeID == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -exchange and -name are required.")
		return subcommands.ExitUsageError
	}

	reg, err := openRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	user, err := reg.users.CreateUser(c.exchangeID, c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created user %q with id %s\n", user.Name, user.ID)
	fmt.Printf("Token: %s\n", user.Token)
	return subcommands.ExitSuccess
}

type newStockCmd struct {
	exchangeID string
	name       string
	symbol     string
}

func (*newStockCmd) Name() string     { return "new-stock" }
func (*newStockCmd) Synopsis() string { return "create a stock in an exchange" }
func (*newStockCmd) Usage() string {
	return `new-stock -exchange <exchange-id> -name <name> [-symbol <symbol>]

  Creates a stock. When -symbol is omitted it is derived from the name
  by slugification.
`
}

func (c *newStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exchangeID, "exchange", "", "Exchange ID (required)")
	f.StringVar(&c.name, "name", "", "Stock name (required)")
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol (defaults to a slug of the name)")
}

func (c *newStockCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.exchangeID == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -exchange and -name are required.")
		return subcommands.ExitUsageError
	}

	reg, err := openRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stock, err := reg.stocks.CreateStock(c.exchangeID, c.name, c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating stock: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created stock %q (%s) with id %s\n", stock.Name, stock.Symbol, stock.ID)
	return subcommands.ExitSuccess
}

type newVoteLabelCmd struct {
	name string
}

func (*newVoteLabelCmd) Name() string     { return "new-vlabel" }
func (*newVoteLabelCmd) Synopsis() string { return "create a vote label" }
func (*newVoteLabelCmd) Usage() string {
	return `new-vlabel -name <name>

  Creates a vote label in the global taxonomy. The label symbol is
  derived from the name by slugification and must be unique.
`
}

func (c *newVoteLabelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Label name (required)")
}

func (c *newVoteLabelCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	reg, err := openRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	label, err := reg.labels.CreateVoteLabel(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating vote label: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created vote label %q (%s) with id %s\n", label.Name, label.Symbol, label.ID)
	return subcommands.ExitSuccess
}
