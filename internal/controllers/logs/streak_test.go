package logsController

import (
	"testing"
	"time"

	. "studytrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(today time.Time, daysAgo int) time.Time {
	return today.AddDate(0, 0, -daysAgo)
}

// logsOn builds a descending-sorted history with one positive-count log per
// given offset (in days before today).
func logsOn(today time.Time, daysAgo ...int) []*DailyLog {
	logs := make([]*DailyLog, 0, len(daysAgo))
	for _, ago := range daysAgo {
		logs = append(logs, &DailyLog{
			Date:            day(today, ago),
			QuestionsSolved: 1,
		})
	}
	return logs
}

func TestCalculateStreaks(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		daysAgo         []int
		expectedCurrent int
		expectedLongest int
	}{
		{
			name:            "empty history",
			daysAgo:         nil,
			expectedCurrent: 0,
			expectedLongest: 0,
		},
		{
			name:            "single log today",
			daysAgo:         []int{0},
			expectedCurrent: 1,
			expectedLongest: 1,
		},
		{
			name:            "single log yesterday",
			daysAgo:         []int{1},
			expectedCurrent: 0,
			expectedLongest: 1,
		},
		{
			name:            "three consecutive days ending today",
			daysAgo:         []int{0, 1, 2},
			expectedCurrent: 3,
			expectedLongest: 3,
		},
		{
			name:            "run exists but today is missing",
			daysAgo:         []int{1, 2},
			expectedCurrent: 0,
			expectedLongest: 2,
		},
		{
			name:            "longest run is behind a gap",
			daysAgo:         []int{0, 1, 3, 4, 5},
			expectedCurrent: 2,
			expectedLongest: 3,
		},
		{
			name:            "long stale run scores zero current",
			daysAgo:         []int{10, 11, 12, 13, 14, 15},
			expectedCurrent: 0,
			expectedLongest: 6,
		},
		{
			name:            "isolated days never chain",
			daysAgo:         []int{0, 2, 4, 6},
			expectedCurrent: 1,
			expectedLongest: 1,
		},
		{
			name:            "current run is also the longest",
			daysAgo:         []int{0, 1, 2, 3, 5, 6},
			expectedCurrent: 4,
			expectedLongest: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := CalculateStreaks(logsOn(today, tt.daysAgo...), today, time.UTC)
			assert.Equal(t, tt.expectedCurrent, current, "current streak")
			assert.Equal(t, tt.expectedLongest, longest, "longest streak")
		})
	}
}

func TestCalculateStreaksIsIdempotent(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	logs := logsOn(today, 0, 1, 3, 4, 5)

	current1, longest1 := CalculateStreaks(logs, today, time.UTC)
	current2, longest2 := CalculateStreaks(logs, today, time.UTC)

	assert.Equal(t, current1, current2)
	assert.Equal(t, longest1, longest2)
}

func TestCalculateStreaksAcrossMonthBoundary(t *testing.T) {
	today := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	// Feb 29 -> Mar 1 -> Mar 2 in a leap year.
	logs := logsOn(today, 0, 1, 2)
	current, longest := CalculateStreaks(logs, today, time.UTC)

	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)
}

// Drivers scan timestamptz columns back in the process-local zone, so a log
// written as midnight in the reference zone can come back as the equivalent
// instant in another representation. The calendar-day comparison must not care.
func TestCalculateStreaksWithRescannedZoneRepresentations(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, tokyo)

	// Tokyo midnights represented as their UTC instants.
	logs := []*DailyLog{
		{Date: today.UTC(), QuestionsSolved: 1},
		{Date: today.AddDate(0, 0, -1).UTC(), QuestionsSolved: 1},
		{Date: today.AddDate(0, 0, -2).UTC(), QuestionsSolved: 1},
	}

	current, longest := CalculateStreaks(logs, today, tokyo)

	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)
}

func TestCalculateStreaksMixedRepresentationsWithGap(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, tokyo)

	logs := []*DailyLog{
		{Date: today.UTC(), QuestionsSolved: 1},
		{Date: today.AddDate(0, 0, -2), QuestionsSolved: 1},
		{Date: today.AddDate(0, 0, -3).UTC(), QuestionsSolved: 1},
	}

	current, longest := CalculateStreaks(logs, today, tokyo)

	assert.Equal(t, 1, current)
	assert.Equal(t, 2, longest)
}
