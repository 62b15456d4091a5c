package models

import (
	"errors"
	"testing"
	"time"

	apperrors "stockdex/internal/errors"
)

func validVote() *Vote {
	return &Vote{
		StockID:    "a",
		UserID:     "b",
		ExchangeID: "c",
		Comment:    "did the thing",
		Rating:     1,
		Date:       time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local),
	}
}

func TestVoteValidate(t *testing.T) {
	if err := validVote().Validate(); err != nil {
		t.Fatalf("valid vote rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Vote)
	}{
		{"missing_stock", func(v *Vote) { v.StockID = "" }},
		{"missing_user", func(v *Vote) { v.UserID = "" }},
		{"missing_exchange", func(v *Vote) { v.ExchangeID = "" }},
		{"empty_comment", func(v *Vote) { v.Comment = "" }},
		{"zero_rating", func(v *Vote) { v.Rating = 0 }},
		{"rating_too_high", func(v *Vote) { v.Rating = 6 }},
		{"rating_too_low", func(v *Vote) { v.Rating = -6 }},
		{"zero_date", func(v *Vote) { v.Date = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vote := validVote()
			tc.mutate(vote)

			err := vote.Validate()
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_FAILED" {
				t.Errorf("expected VALIDATION_FAILED, got %v", err)
			}
		})
	}
}

func TestVoteIncrement(t *testing.T) {
	t.Run("up_vote", func(t *testing.T) {
		vote := validVote()
		vote.Rating = 3
		vote.Labels = []string{"feature", "feature", "demo"}

		inc := vote.Increment()
		if inc.Ups != 1 || inc.Downs != 0 {
			t.Errorf("expected ups=1 downs=0, got ups=%d downs=%d", inc.Ups, inc.Downs)
		}
		if inc.Rating != 3 {
			t.Errorf("expected rating delta 3, got %d", inc.Rating)
		}
		if inc.UpLabels["feature"] != 2 || inc.UpLabels["demo"] != 1 {
			t.Errorf("expected up label tallies, got %v", inc.UpLabels)
		}
		if len(inc.DownLabels) != 0 {
			t.Errorf("expected empty down labels, got %v", inc.DownLabels)
		}
	})

	t.Run("down_vote", func(t *testing.T) {
		vote := validVote()
		vote.Rating = -2
		vote.Labels = []string{"bug"}

		inc := vote.Increment()
		if inc.Ups != 0 || inc.Downs != 1 {
			t.Errorf("expected ups=0 downs=1, got ups=%d downs=%d", inc.Ups, inc.Downs)
		}
		if inc.Rating != -2 {
			t.Errorf("expected rating delta -2, got %d", inc.Rating)
		}
		if inc.DownLabels["bug"] != 1 {
			t.Errorf("expected down label tally, got %v", inc.DownLabels)
		}
	})
}
