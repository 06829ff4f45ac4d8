package logsController

import (
	"testing"
	"time"

	. "studytrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptyWindow(t *testing.T) {
	analytics := Aggregate(nil)

	assert.Equal(t, 0, analytics.TotalQuestions)
	assert.Equal(t, 0, analytics.TotalTime)
	assert.Equal(t, float64(0), analytics.AverageQuestions)
	assert.Equal(t, 0, analytics.StudyDays)
	require.NotNil(t, analytics.DailyData)
	assert.Empty(t, analytics.DailyData)
}

func TestAggregateAveraging(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	logs := []*DailyLog{
		{Date: base, QuestionsSolved: 2, TimeStudied: 30},
		{Date: base.AddDate(0, 0, 1), QuestionsSolved: 4, TimeStudied: 45},
		{Date: base.AddDate(0, 0, 2), QuestionsSolved: 6, TimeStudied: 60},
	}

	analytics := Aggregate(logs)

	assert.Equal(t, 12, analytics.TotalQuestions)
	assert.Equal(t, 135, analytics.TotalTime)
	// sum/count over records, not per calendar day of the window
	assert.Equal(t, float64(4), analytics.AverageQuestions)
	assert.Equal(t, 3, analytics.StudyDays)
}

func TestAggregateZeroCountDaysAreNotStudyDays(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	logs := []*DailyLog{
		{Date: base, QuestionsSolved: 0, TimeStudied: 20},
		{Date: base.AddDate(0, 0, 1), QuestionsSolved: 5, TimeStudied: 0},
	}

	analytics := Aggregate(logs)

	assert.Equal(t, 5, analytics.TotalQuestions)
	assert.Equal(t, 20, analytics.TotalTime)
	assert.Equal(t, 1, analytics.StudyDays)
	assert.Equal(t, 2.5, analytics.AverageQuestions)
}

func TestAggregateDailyDataPreservesOrderAndGaps(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	logs := []*DailyLog{
		{Date: base, QuestionsSolved: 1, TimeStudied: 10},
		// June 2nd is absent and must stay absent, no gap filling
		{Date: base.AddDate(0, 0, 2), QuestionsSolved: 3, TimeStudied: 25},
	}

	analytics := Aggregate(logs)

	require.Len(t, analytics.DailyData, 2)
	assert.Equal(t, base, analytics.DailyData[0].Date)
	assert.Equal(t, 1, analytics.DailyData[0].Questions)
	assert.Equal(t, 10, analytics.DailyData[0].Time)
	assert.Equal(t, base.AddDate(0, 0, 2), analytics.DailyData[1].Date)
	assert.Equal(t, 3, analytics.DailyData[1].Questions)
	assert.Equal(t, 25, analytics.DailyData[1].Time)
}
