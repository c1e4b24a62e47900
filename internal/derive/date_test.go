package derive

import (
	"testing"
	"time"
)

func TestDefaultSince(t *testing.T) {
	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 10, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		today    time.Time
		expected string
	}{
		{
			name:     "monday goes back to friday",
			today:    date(2024, 3, 4),
			expected: "2024-03-01",
		},
		{
			name:     "tuesday goes back one day",
			today:    date(2024, 3, 5),
			expected: "2024-03-04",
		},
		{
			name:     "friday goes back one day",
			today:    date(2024, 3, 8),
			expected: "2024-03-07",
		},
		{
			name:     "saturday goes back one day",
			today:    date(2024, 3, 9),
			expected: "2024-03-08",
		},
		{
			name:     "sunday goes back one day",
			today:    date(2024, 3, 10),
			expected: "2024-03-09",
		},
		{
			name:     "monday crossing a month boundary",
			today:    date(2024, 4, 1),
			expected: "2024-03-29",
		},
		{
			name:     "monday crossing a year boundary",
			today:    date(2024, 1, 1),
			expected: "2023-12-29",
		},
		{
			name:     "tuesday after leap day",
			today:    date(2028, 3, 1),
			expected: "2028-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderDate(DefaultSince(tt.today))
			if result != tt.expected {
				t.Errorf("DefaultSince(%s) = %q, expected %q",
					tt.today.Format(DateLayout), result, tt.expected)
			}
		})
	}
}

func TestDefaultSinceKeepsTimeOfDay(t *testing.T) {
	today := time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC)
	since := DefaultSince(today)

	if today.Sub(since) != 72*time.Hour {
		t.Errorf("expected exactly three days between %v and %v", today, since)
	}
}

func TestEffectiveSince(t *testing.T) {
	tuesday := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "empty uses default",
			raw:      "",
			expected: "2024-03-04",
		},
		{
			name:     "explicit date passes through",
			raw:      "2024-01-01",
			expected: "2024-01-01",
		},
		{
			name:     "relative expression passes through verbatim",
			raw:      "2 weeks ago",
			expected: "2 weeks ago",
		},
		{
			name:     "garbage is not validated",
			raw:      "not-a-date",
			expected: "not-a-date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EffectiveSince(tt.raw, tuesday)
			if result != tt.expected {
				t.Errorf("EffectiveSince(%q) = %q, expected %q", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestRenderDate(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "utc date",
			input:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			expected: "2024-03-05",
		},
		{
			name:     "local evening stays on the local day",
			input:    time.Date(2024, 3, 5, 22, 0, 0, 0, loc),
			expected: "2024-03-05",
		},
		{
			name:     "single digit month and day are zero padded",
			input:    time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC),
			expected: "2025-01-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderDate(tt.input)
			if result != tt.expected {
				t.Errorf("RenderDate(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
