// Package window resolves named reporting windows (today, week, month,
// year, lifetime) into date-range filters for aggregation queries.
package window

import (
	"time"

	apperrors "stockdex/internal/errors"
)

// Kind enumerates the closed set of supported windows. Keeping this a
// tagged variant instead of free-form strings means an unhandled window is
// a compile-time switch gap, not a silent unfiltered query.
type Kind int

const (
	Today Kind = iota
	Week
	Month
	Year
	Lifetime
	Custom
)

// Window is a resolved reporting window. From/To are only set for Custom.
type Window struct {
	Kind Kind
	From *time.Time
	To   *time.Time
}

// Parse maps a window token to a Window. An empty token means today.
// Unrecognized tokens are a hard error; custom ranges are built with
// NewCustom, not parsed from a token.
func Parse(token string) (Window, error) {
	switch token {
	case "", "today":
		return Window{Kind: Today}, nil
	case "week":
		return Window{Kind: Week}, nil
	case "month":
		return Window{Kind: Month}, nil
	case "year":
		return Window{Kind: Year}, nil
	case "lifetime":
		return Window{Kind: Lifetime}, nil
	default:
		return Window{}, apperrors.WithMessage(apperrors.ErrInvalidWindow, "unrecognized window: "+token)
	}
}

// NewCustom builds a custom window from explicit bounds. Either bound may
// be nil for a half-open range.
func NewCustom(from, to *time.Time) Window {
	return Window{Kind: Custom, From: from, To: to}
}

// Bounds resolves the window to an inclusive lower bound and an exclusive
// upper bound, anchored at midnight of the reference time. A nil bound
// means unfiltered on that side; Lifetime returns nil, nil.
func (w Window) Bounds(ref time.Time) (*time.Time, *time.Time) {
	day := Midnight(ref)

	switch w.Kind {
	case Today:
		return &day, nil
	case Week:
		// Monday is day zero of the week.
		monday := day.AddDate(0, 0, -weekdayIndex(day))
		return &monday, nil
	case Month:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return &first, nil
	case Year:
		first := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return &first, nil
	case Custom:
		return w.From, w.To
	default:
		return nil, nil
	}
}

// Midnight truncates t to 00:00:00 of the same calendar day in t's
// location. This is the day-bucket key for votes and activity rollups.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekdayIndex returns 0 for Monday through 6 for Sunday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
