package models

// User represents a voter within an exchange. The token is the user's sole
// credential: a 128-bit hex secret generated at creation, globally unique so
// authentication can look it up without an exchange scope. It is never
// serialized into API responses.
type User struct {
	Base
	ExchangeID string `gorm:"type:uuid;not null;index" json:"exchange_id"`
	Name       string `gorm:"not null" json:"name"`
	Token      string `gorm:"uniqueIndex;size:32;not null" json:"-"`

	Votes []Vote `gorm:"foreignKey:UserID" json:"votes,omitempty"`
}
