package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"stockdex/internal/pagination"
)

// listPage is large enough for operator listings without paging.
var listPage = pagination.PageRequest{Page: 1, PageSize: 100}

type listExchangesCmd struct{}

func (*listExchangesCmd) Name() string             { return "list-exchanges" }
func (*listExchangesCmd) Synopsis() string         { return "list exchanges" }
func (*listExchangesCmd) Usage() string            { return "list-exchanges\n" }
func (*listExchangesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listExchangesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := openRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := reg.exchanges.ListExchanges(listPage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing exchanges: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, exchange := range result.Data {
		fmt.Fprintf(w, "%s\t%s\n", exchange.ID, exchange.Name)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type listStocksCmd struct {
	exchangeID string
}

func (*listStocksCmd) Name() string     { return "list-stocks" }
func (*listStocksCmd) Synopsis() string { return "list stocks in an exchange" }
func (*listStocksCmd) Usage() string {
	return `list-stocks -exchange <exchange-id>

  Lists the stocks of one exchange with their lifetime counters.
`
}

func (c *listStocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exchangeID, "exchange", "", "Exchange ID (required)")
}

func (c *listStocksCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.exchangeID == "" {
		fmt.Fprintln(os.Stderr, "Error: -exchange is required.")
		return subcommands.ExitUsageError
	}

	reg, err := openRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := reg.stocks.ListStocks(c.exchangeID, listPage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing stocks: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYMBOL\tNAME\tUPS\tDOWNS\tRATING")
	for _, stock := range result.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			stock.ID, stock.Symbol, stock.Name, stock.Ups, stock.Downs, stock.Rating)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
