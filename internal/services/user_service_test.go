package services

import (
	"testing"

	"stockdex/internal/pagination"
	"stockdex/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		exchange := testutil.CreateTestExchange(t, db)

		user, err := svc.CreateUser(exchange.ID, "frump")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.ExchangeID != exchange.ID {
			t.Errorf("expected exchange %s, got %s", exchange.ID, user.ExchangeID)
		}
		if len(user.Token) != 32 {
			t.Errorf("expected 32-character hex token, got %q", user.Token)
		}
	})

	t.Run("tokens_are_unique", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		exchange := testutil.CreateTestExchange(t, db)

		first, err := svc.CreateUser(exchange.ID, "one")
		testutil.AssertNoError(t, err)
		second, err := svc.CreateUser(exchange.ID, "two")
		testutil.AssertNoError(t, err)

		if first.Token == second.Token {
			t.Error("two users received the same token")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		exchange := testutil.CreateTestExchange(t, db)

		_, err := svc.CreateUser(exchange.ID, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_exchange", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("00000000-0000-0000-0000-000000000000", "orphan")
		testutil.AssertAppError(t, err, "EXCHANGE_NOT_FOUND")
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		exchange := testutil.CreateTestExchange(t, db)
		user := testutil.CreateTestUser(t, db, exchange.ID)

		got, err := svc.Authenticate(user.Token)
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}
	})

	t.Run("unknown_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Authenticate("deadbeefdeadbeefdeadbeefdeadbeef")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("empty_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Authenticate("")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestListUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	home := testutil.CreateTestExchange(t, db)
	away := testutil.CreateTestExchange(t, db)
	testutil.CreateTestUser(t, db, home.ID)
	testutil.CreateTestUser(t, db, home.ID)
	testutil.CreateTestUser(t, db, away.ID)

	result, err := svc.ListUsers(home.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)

	if result.TotalItems != 2 {
		t.Errorf("expected 2 users in exchange, got %d", result.TotalItems)
	}
	for _, user := range result.Data {
		if user.ExchangeID != home.ID {
			t.Errorf("user %s leaked from exchange %s", user.ID, user.ExchangeID)
		}
	}
}
