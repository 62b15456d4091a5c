package services

import (
	"time"

	"stockdex/internal/models"
	"stockdex/internal/pagination"
	"stockdex/internal/window"
)

// ExchangeServicer defines the contract for exchange provisioning and lookup.
type ExchangeServicer interface {
	CreateExchange(name string) (*models.Exchange, error)
	GetExchangeByID(id string) (*models.Exchange, error)
	ListExchanges(page pagination.PageRequest) (*pagination.PageResponse[models.Exchange], error)
}

// UserServicer defines the contract for user provisioning and token
// authentication. Authenticate is the single credential lookup point; all
// operations that accept a token must route through it.
type UserServicer interface {
	CreateUser(exchangeID, name string) (*models.User, error)
	Authenticate(token string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers(exchangeID string, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
}

// StockServicer defines the contract for stock provisioning and lookup.
type StockServicer interface {
	CreateStock(exchangeID, name, symbol string) (*models.Stock, error)
	GetStockByID(id string) (*models.Stock, error)
	ListStocks(exchangeID string, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error)
	AllStocks() ([]models.Stock, error)
}

// LabelServicer defines the contract for the global vote label taxonomy.
type LabelServicer interface {
	CreateVoteLabel(name string) (*models.VoteLabel, error)
	ListVoteLabels(page pagination.PageRequest) (*pagination.PageResponse[models.VoteLabel], error)
}

// VoteRequest carries the caller's input for casting a vote. Direction may
// be an explicit "up"/"down" token; otherwise the sign of Rating decides.
// Rating zero means unset and defaults to ±1 for the resolved direction.
type VoteRequest struct {
	StockID   string
	Token     string
	Comment   string
	Direction string
	Rating    int
	Labels    []string
}

// LedgerServicer is the write side of the ledger: it validates and applies
// votes and externally imported activity as atomic state transitions across
// the vote log, the stock's lifetime counters, and the per-day bucket.
type LedgerServicer interface {
	CastVote(req VoteRequest) (*models.Vote, error)
	ApplyExternalActivity(stockID string, delta models.ActivityDelta, day *time.Time) error
}

// QueryServicer is the read side: window-scoped queries over the vote log
// and the per-day activity rollups, always scoped to one exchange.
type QueryServicer interface {
	ListVotes(exchangeID string, stockID string, w window.Window, page pagination.PageRequest) (*pagination.PageResponse[models.Vote], error)
	ListDayActivity(exchangeID string, stockID string, w window.Window, page pagination.PageRequest) (*pagination.PageResponse[models.StockDayActivity], error)
}
