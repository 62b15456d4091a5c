package models

// VoteLabel is a global taxonomy entry (e.g. "bug", "feature") that voters
// can attach to a vote. Symbol is the slug form of the name and is the key
// used in per-stock label tallies.
type VoteLabel struct {
	Base
	Name   string `gorm:"not null" json:"name"`
	Symbol string `gorm:"uniqueIndex;not null" json:"symbol"`
}
