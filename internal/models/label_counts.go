package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LabelCounts maps a vote label symbol to the number of votes that carried
// it. Stored as a JSON column; counts never go negative because labels are
// only ever incremented alongside an accepted vote.
type LabelCounts map[string]int64

// Value implements driver.Valuer. A nil map is stored as an empty object so
// readers never have to nil-check the column.
func (c LabelCounts) Value() (driver.Value, error) {
	if c == nil {
		c = LabelCounts{}
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *LabelCounts) Scan(value interface{}) error {
	if value == nil {
		*c = LabelCounts{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into LabelCounts", value)
	}

	if len(raw) == 0 {
		*c = LabelCounts{}
		return nil
	}
	return json.Unmarshal(raw, c)
}

// Add returns a new map holding the sum of c and delta. Neither input is
// modified.
func (c LabelCounts) Add(delta LabelCounts) LabelCounts {
	out := make(LabelCounts, len(c)+len(delta))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range delta {
		out[k] += v
	}
	return out
}
