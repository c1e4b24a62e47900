package derive

import (
	"time"
)

// DateLayout is the YYYY-MM-DD layout used for file names and git --since values
const DateLayout = "2006-01-02"

// DefaultSince returns the last working day before today.
// Monday looks back to Friday, every other day looks back one day.
// Weekends and holidays are not otherwise special-cased.
func DefaultSince(today time.Time) time.Time {
	if today.Weekday() == time.Monday {
		return today.AddDate(0, 0, -3)
	}
	return today.AddDate(0, 0, -1)
}

// EffectiveSince returns the raw --since value when one was given, otherwise
// the formatted default. The raw value is passed through untouched so git can
// interpret expressions like "2 weeks ago".
func EffectiveSince(raw string, today time.Time) string {
	if raw != "" {
		return raw
	}
	return RenderDate(DefaultSince(today))
}

// RenderDate formats a time as YYYY-MM-DD in its own location
func RenderDate(t time.Time) string {
	return t.Format(DateLayout)
}
