package models

import (
	"time"

	"gorm.io/datatypes"
)

// StockDayActivity is the per-calendar-day rollup for one stock: the same
// counter shape as Stock, scoped to a single day. Rows are created lazily by
// the first vote or imported activity for that day; the composite unique
// index guarantees at most one row per (stock, day) even when two writers
// race to create it.
type StockDayActivity struct {
	Base
	ExchangeID string            `gorm:"type:uuid;not null;index" json:"exchange_id"`
	StockID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_stock_day" json:"stock_id"`
	Date       time.Time         `gorm:"not null;uniqueIndex:idx_stock_day" json:"date"`
	Ups        int64             `gorm:"not null;default:0" json:"ups"`
	Downs      int64             `gorm:"not null;default:0" json:"downs"`
	Rating     int64             `gorm:"not null;default:0" json:"rating"`
	UpLabels   LabelCounts       `gorm:"type:jsonb" json:"up_labels"`
	DownLabels LabelCounts       `gorm:"type:jsonb" json:"down_labels"`
	Gitlab     datatypes.JSONMap `gorm:"type:jsonb" json:"gitlab"`
}
