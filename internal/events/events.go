// Package events defines the outbound boundary between the ledger and the
// notification layer. The ledger publishes a vote-created event after each
// committed vote; room-scoped fan-out is the notification layer's concern,
// not the core's.
package events

import (
	"fmt"

	"stockdex/internal/logger"
	"stockdex/internal/models"
)

// Publisher receives vote-created events keyed by the stock's exchange.
// Implementations must not block the voting path.
type Publisher interface {
	VoteCast(exchangeID string, vote *models.Vote)
}

// Room returns the fan-out room key for an exchange.
func Room(exchangeID string) string {
	return fmt.Sprintf("exchange.%s", exchangeID)
}

// logPublisher records vote events to the structured log. It stands in for
// the websocket broadcast layer in deployments that run without one.
type logPublisher struct{}

// NewLogPublisher creates a Publisher backed by the global logger.
func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) VoteCast(exchangeID string, vote *models.Vote) {
	logger.Named("events").Infow("vote cast",
		"room", Room(exchangeID),
		"vote_id", vote.ID,
		"stock_id", vote.StockID,
		"user_id", vote.UserID,
		"rating", vote.Rating,
	)
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) VoteCast(string, *models.Vote) {}
