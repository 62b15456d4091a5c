package models

import (
	"time"

	"gorm.io/datatypes"

	apperrors "stockdex/internal/errors"
)

// Per-vote rating bounds. The lifetime accumulator on Stock is unbounded;
// only the individual vote contribution is clamped.
const (
	RatingMin = -5
	RatingMax = 5
)

// Vote is an immutable append-only log entry: one user's rated, labeled
// opinion on a stock. Date is the day-bucket key, truncated to midnight of
// the day the vote was cast, not an audit timestamp (CreatedAt serves that).
type Vote struct {
	Base
	StockID    string                     `gorm:"type:uuid;not null;index" json:"stock_id"`
	UserID     string                     `gorm:"type:uuid;not null;index" json:"user_id"`
	ExchangeID string                     `gorm:"type:uuid;not null;index" json:"exchange_id"`
	Comment    string                     `gorm:"not null" json:"comment"`
	Rating     int                        `gorm:"not null" json:"rating"`
	Labels     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"labels"`
	Date       time.Time                  `gorm:"not null;index" json:"date"`
}

// Validate checks the record against the entity schema before persistence.
// A zero rating is rejected because sign(rating) is the vote's direction.
func (v *Vote) Validate() error {
	if v.StockID == "" {
		return apperrors.Validation("stock_id", "is required")
	}
	if v.UserID == "" {
		return apperrors.Validation("user_id", "is required")
	}
	if v.ExchangeID == "" {
		return apperrors.Validation("exchange_id", "is required")
	}
	if v.Comment == "" {
		return apperrors.Validation("comment", "is required")
	}
	if v.Rating == 0 {
		return apperrors.Validation("rating", "must be non-zero")
	}
	if v.Rating < RatingMin || v.Rating > RatingMax {
		return apperrors.Validation("rating", "must be between -5 and 5")
	}
	if v.Date.IsZero() {
		return apperrors.Validation("date", "is required")
	}
	return nil
}

// Increment is the counter delta a single vote contributes to its stock's
// lifetime record and day bucket. Exactly one of Ups/Downs is 1.
type Increment struct {
	Ups        int64
	Downs      int64
	Rating     int64
	UpLabels   LabelCounts
	DownLabels LabelCounts
}

// Increment derives the counter delta from the vote. Labels land under
// up_labels or down_labels depending on the vote's direction.
func (v *Vote) Increment() Increment {
	inc := Increment{
		Rating:     int64(v.Rating),
		UpLabels:   LabelCounts{},
		DownLabels: LabelCounts{},
	}
	if v.Rating > 0 {
		inc.Ups = 1
		for _, label := range v.Labels {
			inc.UpLabels[label]++
		}
	} else {
		inc.Downs = 1
		for _, label := range v.Labels {
			inc.DownLabels[label]++
		}
	}
	return inc
}
