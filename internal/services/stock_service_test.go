package services

import (
	"testing"

	"stockdex/internal/pagination"
	"stockdex/internal/testutil"
)

func TestCreateStock(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockService(db)
		exchange := testutil.CreateTestExchange(t, db)

		stock, err := svc.CreateStock(exchange.ID, "Acme Corp", "")
		testutil.AssertNoError(t, err)

		if stock.Symbol != "acme-corp" {
			t.Errorf("expected derived symbol acme-corp, got %s", stock.Symbol)
		}
		if stock.Ups != 0 || stock.Downs != 0 || stock.Rating != 0 {
			t.Errorf("expected zeroed counters, got ups=%d downs=%d rating=%d",
				stock.Ups, stock.Downs, stock.Rating)
		}
		if stock.UpLabels == nil || stock.DownLabels == nil {
			t.Error("expected initialized label maps")
		}
	})

	t.Run("explicit_symbol_is_slugified", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockService(db)
		exchange := testutil.CreateTestExchange(t, db)

		stock, err := svc.CreateStock(exchange.ID, "Acme Corp", "ACME Inc!")
		testutil.AssertNoError(t, err)

		if stock.Symbol != "acme-inc" {
			t.Errorf("expected symbol acme-inc, got %s", stock.Symbol)
		}
	})

	t.Run("derivation_is_deterministic", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockService(db)
		home := testutil.CreateTestExchange(t, db)
		away := testutil.CreateTestExchange(t, db)

		first, err := svc.CreateStock(home.ID, "Same Name", "")
		testutil.AssertNoError(t, err)
		second, err := svc.CreateStock(away.ID, "Same Name", "")
		testutil.AssertNoError(t, err)

		if first.Symbol != second.Symbol {
			t.Errorf("same name produced different symbols: %s vs %s", first.Symbol, second.Symbol)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockService(db)
		exchange := testutil.CreateTestExchange(t, db)

		_, err := svc.CreateStock(exchange.ID, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_exchange", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStockService(db)

		_, err := svc.CreateStock("00000000-0000-0000-0000-000000000000", "Orphan", "")
		testutil.AssertAppError(t, err, "EXCHANGE_NOT_FOUND")
	})
}

func TestListStocks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)

	home := testutil.CreateTestExchange(t, db)
	away := testutil.CreateTestExchange(t, db)
	testutil.CreateTestStock(t, db, home.ID)
	testutil.CreateTestStock(t, db, home.ID)
	testutil.CreateTestStock(t, db, away.ID)

	result, err := svc.ListStocks(home.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 2 {
		t.Errorf("expected 2 stocks in exchange, got %d", result.TotalItems)
	}

	all, err := svc.AllStocks()
	testutil.AssertNoError(t, err)
	if len(all) != 3 {
		t.Errorf("expected 3 stocks across exchanges, got %d", len(all))
	}
}

func TestGetStockByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)
	exchange := testutil.CreateTestExchange(t, db)
	stock := testutil.CreateTestStock(t, db, exchange.ID)

	got, err := svc.GetStockByID(stock.ID)
	testutil.AssertNoError(t, err)
	if got.ID != stock.ID {
		t.Errorf("expected stock %s, got %s", stock.ID, got.ID)
	}

	_, err = svc.GetStockByID("00000000-0000-0000-0000-000000000000")
	testutil.AssertAppError(t, err, "STOCK_NOT_FOUND")
}
