package testutil_test

import (
	"testing"

	"stockdex/internal/errors"
	"stockdex/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"exchanges", "users", "vote_labels", "stocks", "votes", "stock_day_activities"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	exchange := testutil.CreateTestExchange(t, db)
	if exchange.ID == "" {
		t.Fatal("exchange should have a non-empty ID")
	}

	user := testutil.CreateTestUser(t, db, exchange.ID)
	if user.ExchangeID != exchange.ID {
		t.Errorf("expected user exchange %q, got %q", exchange.ID, user.ExchangeID)
	}
	if len(user.Token) != 32 {
		t.Errorf("expected 32-character token, got %d", len(user.Token))
	}

	stock := testutil.CreateTestStock(t, db, exchange.ID)
	if stock.Ups != 0 || stock.Downs != 0 || stock.Rating != 0 {
		t.Errorf("expected zeroed counters, got ups=%d downs=%d rating=%d", stock.Ups, stock.Downs, stock.Rating)
	}

	label := testutil.CreateTestVoteLabel(t, db)
	if label.Symbol == "" {
		t.Error("label should have a symbol")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrStockNotFound, "custom message")
	testutil.AssertAppError(t, err, "STOCK_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
