package gitlab

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stockdex/internal/logger"
	"stockdex/internal/services"
)

// Importer pulls each stock's GitLab activity for the current day and folds
// it into the ledger. Stock symbols double as GitLab usernames; stocks with
// no matching user are skipped, not failed, so one bad symbol cannot stall
// the whole run.
type Importer struct {
	stocks services.StockServicer
	ledger services.LedgerServicer
	client *Client
	log    *zap.SugaredLogger
}

// NewImporter creates a new Importer.
func NewImporter(stocks services.StockServicer, ledger services.LedgerServicer, client *Client) *Importer {
	return &Importer{
		stocks: stocks,
		ledger: ledger,
		client: client,
		log:    logger.Named("importer"),
	}
}

// Run imports today's activity for every stock. Per-stock failures are
// logged and skipped; the error return covers only the stock listing itself.
func (i *Importer) Run(ctx context.Context) error {
	stocks, err := i.stocks.AllStocks()
	if err != nil {
		return err
	}

	day := time.Now()
	imported := 0
	for _, stock := range stocks {
		userID, err := i.client.UserID(ctx, stock.Symbol)
		if err != nil {
			i.log.Warnw("skipping stock without gitlab user",
				"symbol", stock.Symbol, "error", err)
			continue
		}

		activity, err := i.client.DayActivity(ctx, userID, day)
		if err != nil {
			i.log.Errorw("failed to fetch activity",
				"symbol", stock.Symbol, "error", err)
			continue
		}
		if len(activity) == 0 {
			continue
		}

		if err := i.ledger.ApplyExternalActivity(stock.ID, activity, &day); err != nil {
			i.log.Errorw("failed to apply activity",
				"symbol", stock.Symbol, "error", err)
			continue
		}
		imported++
	}

	i.log.Infow("import run complete", "stocks", len(stocks), "imported", imported)
	return nil
}
