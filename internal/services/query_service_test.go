package services

import (
	"testing"
	"time"

	"stockdex/internal/events"
	"stockdex/internal/models"
	"stockdex/internal/pagination"
	"stockdex/internal/testutil"
	"stockdex/internal/window"
)

func TestListVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledger := NewLedgerService(db, NewUserService(db), events.NopPublisher{})
	svc := NewQueryService(db)

	home := testutil.CreateTestExchange(t, db)
	away := testutil.CreateTestExchange(t, db)
	user := testutil.CreateTestUser(t, db, home.ID)
	outsider := testutil.CreateTestUser(t, db, away.ID)
	stock := testutil.CreateTestStock(t, db, home.ID)
	other := testutil.CreateTestStock(t, db, home.ID)
	awayStock := testutil.CreateTestStock(t, db, away.ID)

	for _, target := range []string{stock.ID, stock.ID, other.ID} {
		_, err := ledger.CastVote(VoteRequest{
			StockID: target, Token: user.Token, Comment: "vote", Direction: "up",
		})
		testutil.AssertNoError(t, err)
	}
	_, err := ledger.CastVote(VoteRequest{
		StockID: awayStock.ID, Token: outsider.Token, Comment: "vote", Direction: "down",
	})
	testutil.AssertNoError(t, err)

	t.Run("exchange_scoped", func(t *testing.T) {
		result, err := svc.ListVotes(home.ID, "", window.Window{Kind: window.Lifetime}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 3 {
			t.Errorf("expected 3 votes in exchange, got %d", result.TotalItems)
		}
	})

	t.Run("stock_scoped", func(t *testing.T) {
		result, err := svc.ListVotes(home.ID, stock.ID, window.Window{Kind: window.Lifetime}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 votes for stock, got %d", result.TotalItems)
		}
	})

	t.Run("today_window_includes_fresh_votes", func(t *testing.T) {
		result, err := svc.ListVotes(home.ID, "", window.Window{Kind: window.Today}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 3 {
			t.Errorf("expected 3 votes today, got %d", result.TotalItems)
		}
	})

	t.Run("custom_window_excludes_past", func(t *testing.T) {
		tomorrow := window.Midnight(time.Now()).AddDate(0, 0, 1)
		result, err := svc.ListVotes(home.ID, "", window.NewCustom(&tomorrow, nil), pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected no votes from tomorrow on, got %d", result.TotalItems)
		}
	})
}

func TestListDayActivity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledger := NewLedgerService(db, NewUserService(db), events.NopPublisher{})
	svc := NewQueryService(db)

	exchange := testutil.CreateTestExchange(t, db)
	user := testutil.CreateTestUser(t, db, exchange.ID)
	stock := testutil.CreateTestStock(t, db, exchange.ID)

	_, err := ledger.CastVote(VoteRequest{
		StockID: stock.ID, Token: user.Token, Comment: "vote", Direction: "up",
	})
	testutil.AssertNoError(t, err)

	// Seed an older bucket outside this week.
	lastMonth := time.Now().AddDate(0, -1, 0)
	testutil.AssertNoError(t, ledger.ApplyExternalActivity(stock.ID, models.ActivityDelta{"total": 1}, &lastMonth))

	t.Run("lifetime_sees_all_buckets", func(t *testing.T) {
		result, err := svc.ListDayActivity(exchange.ID, stock.ID, window.Window{Kind: window.Lifetime}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 day buckets, got %d", result.TotalItems)
		}
	})

	t.Run("today_sees_only_todays_bucket", func(t *testing.T) {
		result, err := svc.ListDayActivity(exchange.ID, stock.ID, window.Window{Kind: window.Today}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Fatalf("expected 1 bucket today, got %d", result.TotalItems)
		}
		if result.Data[0].Ups != 1 {
			t.Errorf("expected today's bucket ups=1, got %d", result.Data[0].Ups)
		}
	})
}
