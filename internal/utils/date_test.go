package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    time.Time
		loc      *time.Location
		expected time.Time
	}{
		{
			name:     "UTC afternoon truncates to UTC midnight",
			input:    time.Date(2024, 3, 15, 14, 30, 45, 123, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "UTC midnight is unchanged",
			input:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "UTC instant lands on previous calendar day in Chicago",
			input:    time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC),
			loc:      chicago,
			expected: time.Date(2024, 3, 14, 0, 0, 0, 0, chicago),
		},
		{
			name:     "zoned instant normalized in its own zone",
			input:    time.Date(2024, 7, 4, 23, 59, 59, 0, chicago),
			loc:      chicago,
			expected: time.Date(2024, 7, 4, 0, 0, 0, 0, chicago),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfDay(tt.input, tt.loc)
			assert.True(t, got.Equal(tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name     string
		later    time.Time
		earlier  time.Time
		loc      *time.Location
		expected int
	}{
		{
			name:     "same day",
			later:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			earlier:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: 0,
		},
		{
			name:     "adjacent days",
			later:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			earlier:  time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: 1,
		},
		{
			name:     "across a month boundary",
			later:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			earlier:  time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: 3,
		},
		{
			name:     "across a year boundary",
			later:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			earlier:  time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: 1,
		},
		{
			// 2024-03-10 is the US spring-forward date; the interval is only
			// 23 hours long but still spans exactly one calendar day.
			name:     "spring forward still counts one day",
			later:    time.Date(2024, 3, 11, 0, 0, 0, 0, chicago),
			earlier:  time.Date(2024, 3, 10, 0, 0, 0, 0, chicago),
			loc:      chicago,
			expected: 1,
		},
		{
			// Fall-back interval is 25 hours long.
			name:     "fall back still counts one day",
			later:    time.Date(2024, 11, 4, 0, 0, 0, 0, chicago),
			earlier:  time.Date(2024, 11, 3, 0, 0, 0, 0, chicago),
			loc:      chicago,
			expected: 1,
		},
		{
			// A Tokyo midnight scanned back as its UTC instant is still the
			// same Tokyo day; the operand's zone representation must not
			// change the count.
			name:     "utc representation of a zoned midnight",
			later:    time.Date(2024, 6, 15, 0, 0, 0, 0, tokyo),
			earlier:  time.Date(2024, 6, 14, 0, 0, 0, 0, tokyo).UTC(),
			loc:      tokyo,
			expected: 1,
		},
		{
			name:     "same instant in two zone representations",
			later:    time.Date(2024, 6, 15, 0, 0, 0, 0, tokyo).UTC(),
			earlier:  time.Date(2024, 6, 15, 0, 0, 0, 0, tokyo),
			loc:      tokyo,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.later, tt.earlier, tt.loc))
		})
	}
}
