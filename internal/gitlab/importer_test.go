package gitlab

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockdex/internal/models"
	"stockdex/internal/pagination"
	"stockdex/internal/services"
)

type fakeStocks struct {
	stocks []models.Stock
}

func (f *fakeStocks) CreateStock(string, string, string) (*models.Stock, error) { return nil, nil }
func (f *fakeStocks) GetStockByID(string) (*models.Stock, error)                { return nil, nil }
func (f *fakeStocks) ListStocks(string, pagination.PageRequest) (*pagination.PageResponse[models.Stock], error) {
	return nil, nil
}
func (f *fakeStocks) AllStocks() ([]models.Stock, error) { return f.stocks, nil }

type fakeLedger struct {
	applied map[string]models.ActivityDelta
}

func (f *fakeLedger) CastVote(services.VoteRequest) (*models.Vote, error) { return nil, nil }
func (f *fakeLedger) ApplyExternalActivity(stockID string, delta models.ActivityDelta, _ *time.Time) error {
	f.applied[stockID] = delta
	return nil
}

var (
	_ services.StockServicer  = (*fakeStocks)(nil)
	_ services.LedgerServicer = (*fakeLedger)(nil)
)

func TestImporterRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v4/users" && r.URL.Query().Get("username") == "acme":
			w.Write([]byte(`[{"id": 7, "username": "acme"}]`))
		case r.URL.Path == "/api/v4/users":
			// Unknown usernames come back empty; the importer must skip them.
			w.Write([]byte(`[]`))
		case r.URL.Path == "/api/v4/users/7/events":
			w.Write([]byte(`[{"action_name": "pushed to"}]`))
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	stocks := &fakeStocks{stocks: []models.Stock{
		{Base: models.Base{ID: "stock-1"}, Symbol: "acme"},
		{Base: models.Base{ID: "stock-2"}, Symbol: "no-such-user"},
	}}
	ledger := &fakeLedger{applied: map[string]models.ActivityDelta{}}

	importer := NewImporter(stocks, ledger, NewClient(server.URL, "secret"))
	if err := importer.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ledger.applied) != 1 {
		t.Fatalf("expected exactly one stock imported, got %d", len(ledger.applied))
	}
	delta := ledger.applied["stock-1"]
	if delta["pushed_to"] != 1 || delta["total"] != 1 {
		t.Errorf("unexpected delta: %v", delta)
	}
}
