package models

// Exchange is the tenant boundary. Every user, stock, and vote belongs to
// exactly one exchange; nothing crosses it.
type Exchange struct {
	Base
	Name string `gorm:"not null" json:"name"`

	// Relationships
	Users  []User  `gorm:"foreignKey:ExchangeID" json:"users,omitempty"`
	Stocks []Stock `gorm:"foreignKey:ExchangeID" json:"stocks,omitempty"`
}
