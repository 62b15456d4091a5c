package services

import (
	"testing"

	"stockdex/internal/pagination"
	"stockdex/internal/testutil"
)

func TestCreateExchange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExchangeService(db)

		exchange, err := svc.CreateExchange("The Office")
		testutil.AssertNoError(t, err)
		if exchange.ID == "" {
			t.Fatal("expected non-empty exchange ID")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExchangeService(db)

		_, err := svc.CreateExchange("")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetExchangeByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExchangeService(db)
	exchange := testutil.CreateTestExchange(t, db)

	got, err := svc.GetExchangeByID(exchange.ID)
	testutil.AssertNoError(t, err)
	if got.Name != exchange.Name {
		t.Errorf("expected name %q, got %q", exchange.Name, got.Name)
	}

	_, err = svc.GetExchangeByID("00000000-0000-0000-0000-000000000000")
	testutil.AssertAppError(t, err, "EXCHANGE_NOT_FOUND")
}

func TestListExchanges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExchangeService(db)

	testutil.CreateTestExchange(t, db)
	testutil.CreateTestExchange(t, db)

	result, err := svc.ListExchanges(pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 2 {
		t.Errorf("expected 2 exchanges, got %d", result.TotalItems)
	}
}
