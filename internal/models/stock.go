package models

import "gorm.io/datatypes"

// Stock is a votable subject with lifetime counters. Ups and downs each grow
// by exactly one per accepted vote; Rating accumulates the signed per-vote
// ratings and is unbounded. UpLabels/DownLabels tally label symbols attached
// to up and down votes respectively, so no label count can exceed its parent
// ups/downs. Gitlab holds externally imported activity counters and is only
// touched by the import path, never by votes.
type Stock struct {
	Base
	ExchangeID string            `gorm:"type:uuid;not null;index" json:"exchange_id"`
	Name       string            `gorm:"not null" json:"name"`
	Symbol     string            `gorm:"not null;index" json:"symbol"`
	Ups        int64             `gorm:"not null;default:0" json:"ups"`
	Downs      int64             `gorm:"not null;default:0" json:"downs"`
	Rating     int64             `gorm:"not null;default:0" json:"rating"`
	UpLabels   LabelCounts       `gorm:"type:jsonb" json:"up_labels"`
	DownLabels LabelCounts       `gorm:"type:jsonb" json:"down_labels"`
	Gitlab     datatypes.JSONMap `gorm:"type:jsonb" json:"gitlab"`

	Votes []Vote `gorm:"foreignKey:StockID" json:"votes,omitempty"`
}
