package logsController

import (
	"strings"
	"testing"
	"time"

	. "studytrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	tests := []struct {
		name     string
		raw      string
		loc      *time.Location
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "bare date",
			raw:      "2024-06-15",
			loc:      time.UTC,
			expected: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 truncates to the day",
			raw:      "2024-06-15T14:30:00Z",
			loc:      time.UTC,
			expected: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 evening utc is still the same chicago day",
			raw:  "2024-06-15T03:30:00Z",
			loc:  chicago,
			// 03:30 UTC is 22:30 the previous evening in Chicago
			expected: time.Date(2024, 6, 14, 0, 0, 0, 0, chicago),
		},
		{
			name:    "empty date",
			raw:     "",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "garbage",
			raw:     "June 15th",
			loc:     time.UTC,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDay(tt.raw, tt.loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestApplyLogFieldsMergesOnlySubmittedFields(t *testing.T) {
	questions := 12
	mood := string(MoodGood)

	entry := &DailyLog{
		QuestionsSolved: 5,
		TimeStudied:     90,
		Notes:           "kept",
		Mood:            MoodAverage,
		Achievements:    []string{"first week"},
	}

	applyLogFields(entry, &UpsertLogRequest{
		QuestionsSolved: &questions,
		Mood:            &mood,
	})

	assert.Equal(t, 12, entry.QuestionsSolved)
	assert.Equal(t, MoodGood, entry.Mood)
	// absent fields stay untouched
	assert.Equal(t, 90, entry.TimeStudied)
	assert.Equal(t, "kept", entry.Notes)
	assert.Equal(t, []string{"first week"}, []string(entry.Achievements))
}

func TestApplyLogFieldsCanClearValues(t *testing.T) {
	zero := 0
	empty := ""
	noTopics := []LinkedTopic{}

	entry := &DailyLog{
		QuestionsSolved: 5,
		Notes:           "stale",
		LinkedTopics:    []LinkedTopic{{SubtopicName: "Arrays"}},
	}

	applyLogFields(entry, &UpsertLogRequest{
		QuestionsSolved: &zero,
		Notes:           &empty,
		LinkedTopics:    &noTopics,
	})

	assert.Equal(t, 0, entry.QuestionsSolved)
	assert.Equal(t, "", entry.Notes)
	assert.Empty(t, entry.LinkedTopics)
}

func TestValidateUpsertRequest(t *testing.T) {
	negative := -1
	longNotes := strings.Repeat("a", MaxNotesLength+1)
	badMood := "ecstatic"
	goodMood := string(MoodExcellent)
	emptyMood := ""

	tests := []struct {
		name    string
		request UpsertLogRequest
		wantErr bool
	}{
		{name: "empty request is valid", request: UpsertLogRequest{}},
		{name: "negative questions", request: UpsertLogRequest{QuestionsSolved: &negative}, wantErr: true},
		{name: "negative time", request: UpsertLogRequest{TimeStudied: &negative}, wantErr: true},
		{name: "oversized notes", request: UpsertLogRequest{Notes: &longNotes}, wantErr: true},
		{name: "unknown mood", request: UpsertLogRequest{Mood: &badMood}, wantErr: true},
		{name: "known mood", request: UpsertLogRequest{Mood: &goodMood}},
		{name: "empty mood is treated as unset", request: UpsertLogRequest{Mood: &emptyMood}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUpsertRequest(&tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
