package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"stockdex/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExchange creates an exchange with a unique name.
func CreateTestExchange(t *testing.T, db *gorm.DB) *models.Exchange {
	t.Helper()

	exchange := &models.Exchange{
		Name: fmt.Sprintf("Test Exchange %d", nextID()),
	}
	if err := db.Create(exchange).Error; err != nil {
		t.Fatalf("failed to create test exchange: %v", err)
	}
	return exchange
}

// CreateTestUser creates a user in the given exchange with a unique token.
func CreateTestUser(t *testing.T, db *gorm.DB, exchangeID string) *models.User {
	t.Helper()

	user := &models.User{
		ExchangeID: exchangeID,
		Name:       fmt.Sprintf("Test User %d", nextID()),
		Token:      fmt.Sprintf("%032x", nextID()),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestStock creates a stock in the given exchange with zeroed counters.
func CreateTestStock(t *testing.T, db *gorm.DB, exchangeID string) *models.Stock {
	t.Helper()

	n := nextID()
	stock := &models.Stock{
		ExchangeID: exchangeID,
		Name:       fmt.Sprintf("Test Stock %d", n),
		Symbol:     fmt.Sprintf("test-stock-%d", n),
		UpLabels:   models.LabelCounts{},
		DownLabels: models.LabelCounts{},
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestVoteLabel creates a vote label with a unique name and symbol.
func CreateTestVoteLabel(t *testing.T, db *gorm.DB) *models.VoteLabel {
	t.Helper()

	n := nextID()
	label := &models.VoteLabel{
		Name:   fmt.Sprintf("Test Label %d", n),
		Symbol: fmt.Sprintf("test-label-%d", n),
	}
	if err := db.Create(label).Error; err != nil {
		t.Fatalf("failed to create test vote label: %v", err)
	}
	return label
}
