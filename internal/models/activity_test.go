package models

import (
	"testing"

	"gorm.io/datatypes"
)

func TestMergeActivity(t *testing.T) {
	t.Run("into_empty", func(t *testing.T) {
		got := MergeActivity(nil, ActivityDelta{"pushed_to": 2, "total": 2})
		if got["pushed_to"] != int64(2) || got["total"] != int64(2) {
			t.Errorf("unexpected merge result: %v", got)
		}
	})

	t.Run("normalizes_scanned_floats", func(t *testing.T) {
		// A column read back from the store decodes numbers as float64.
		existing := datatypes.JSONMap{"pushed_to": float64(3)}
		got := MergeActivity(existing, ActivityDelta{"pushed_to": 1, "commented_on": 5})
		if got["pushed_to"] != int64(4) {
			t.Errorf("expected pushed_to=4, got %v", got["pushed_to"])
		}
		if got["commented_on"] != int64(5) {
			t.Errorf("expected commented_on=5, got %v", got["commented_on"])
		}
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		existing := datatypes.JSONMap{"total": int64(1)}
		MergeActivity(existing, ActivityDelta{"total": 1})
		if existing["total"] != int64(1) {
			t.Errorf("input mutated: %v", existing)
		}
	})
}

func TestLabelCountsAdd(t *testing.T) {
	base := LabelCounts{"bug": 2}
	delta := LabelCounts{"bug": 1, "demo": 1}

	got := base.Add(delta)
	if got["bug"] != 3 || got["demo"] != 1 {
		t.Errorf("unexpected sum: %v", got)
	}
	if base["bug"] != 2 || len(base) != 1 {
		t.Errorf("receiver mutated: %v", base)
	}
	if delta["bug"] != 1 {
		t.Errorf("delta mutated: %v", delta)
	}
}
