package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ActivityDelta is a bag of external activity counters keyed by action name
// (e.g. "pushed_to", "commented_on"). The key set is open-ended: whatever
// the import feed reports is accumulated as-is, alongside a "total" count.
type ActivityDelta map[string]int64

// MergeActivity folds delta into an existing activity column and returns the
// merged bag. JSON round-trips hand numbers back as float64, so existing
// values are normalized to int64 before adding.
func MergeActivity(existing datatypes.JSONMap, delta ActivityDelta) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range existing {
		out[k] = activityCount(v)
	}
	for k, n := range delta {
		out[k] = activityCount(out[k]) + n
	}
	return out
}

func activityCount(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
