package topicsController

import (
	"testing"

	. "studytrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestValidateTopicRequest(t *testing.T) {
	tests := []struct {
		name    string
		request TopicRequest
		wantErr bool
	}{
		{name: "empty request", request: TopicRequest{}},
		{name: "valid category", request: TopicRequest{Category: strPtr("DSA")}},
		{name: "unknown category", request: TopicRequest{Category: strPtr("Gardening")}, wantErr: true},
		{name: "unknown status", request: TopicRequest{Status: strPtr("Done")}, wantErr: true},
		{name: "unknown priority", request: TopicRequest{Priority: strPtr("Urgent")}, wantErr: true},
		{name: "negative time", request: TopicRequest{TimeSpent: floatPtr(-1)}, wantErr: true},
		{name: "progress over 100", request: TopicRequest{Progress: intPtr(101)}, wantErr: true},
		{name: "progress at bounds", request: TopicRequest{Progress: intPtr(100)}},
		{
			name: "subtopic without name",
			request: TopicRequest{
				Subtopics: &[]Subtopic{{Status: StatusNotStarted}},
			},
			wantErr: true,
		},
		{
			name: "resource without url",
			request: TopicRequest{
				Resources: &[]Resource{{Title: "Intro", Type: ResourceVideo}},
			},
			wantErr: true,
		},
		{
			name: "resource with bad type",
			request: TopicRequest{
				Resources: &[]Resource{{URL: "https://example.com", Type: "Podcast"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTopicRequest(&tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignSubtopicIDs(t *testing.T) {
	existing := uuid.Must(uuid.NewV7())
	topic := &Topic{
		Subtopics: []Subtopic{
			{ID: existing, Name: "Arrays", Status: StatusInProgress},
			{Name: "Trees"},
		},
	}

	assignSubtopicIDs(topic)

	// existing identities survive, new ones are minted
	assert.Equal(t, existing, topic.Subtopics[0].ID)
	assert.NotEqual(t, uuid.Nil, topic.Subtopics[1].ID)
	assert.Equal(t, StatusInProgress, topic.Subtopics[0].Status)
	assert.Equal(t, StatusNotStarted, topic.Subtopics[1].Status)
}

func TestRollUpSubtopics(t *testing.T) {
	tests := []struct {
		name             string
		subtopics        []Subtopic
		expectedProgress int
		expectedStatus   ProgressStatus
		expectedTime     float64
	}{
		{
			name: "all completed",
			subtopics: []Subtopic{
				{Status: StatusCompleted, TimeSpent: 2},
				{Status: StatusCompleted, TimeSpent: 3},
			},
			expectedProgress: 100,
			expectedStatus:   StatusCompleted,
			expectedTime:     5,
		},
		{
			name: "half completed",
			subtopics: []Subtopic{
				{Status: StatusCompleted, TimeSpent: 1.5},
				{Status: StatusNotStarted},
			},
			expectedProgress: 50,
			expectedStatus:   StatusInProgress,
			expectedTime:     1.5,
		},
		{
			name: "in progress only",
			subtopics: []Subtopic{
				{Status: StatusInProgress, TimeSpent: 0.5},
				{Status: StatusNotStarted},
			},
			expectedProgress: 0,
			expectedStatus:   StatusInProgress,
			expectedTime:     0.5,
		},
		{
			name: "nothing started",
			subtopics: []Subtopic{
				{Status: StatusNotStarted},
				{Status: StatusNotStarted},
			},
			expectedProgress: 0,
			expectedStatus:   StatusNotStarted,
			expectedTime:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := &Topic{Subtopics: tt.subtopics}
			rollUpSubtopics(topic)

			assert.Equal(t, tt.expectedProgress, topic.Progress)
			assert.Equal(t, tt.expectedStatus, topic.Status)
			assert.Equal(t, tt.expectedTime, topic.TimeSpent)
		})
	}
}

func TestRollUpSubtopicsLeavesManualValuesWithoutChildren(t *testing.T) {
	topic := &Topic{
		Status:    StatusInProgress,
		Progress:  40,
		TimeSpent: 7,
	}

	rollUpSubtopics(topic)

	assert.Equal(t, StatusInProgress, topic.Status)
	assert.Equal(t, 40, topic.Progress)
	assert.Equal(t, float64(7), topic.TimeSpent)
}

func TestApplyTopicFieldsMergesOnlySubmittedFields(t *testing.T) {
	topic := &Topic{
		Category:    CategoryDSA,
		Name:        "Graphs",
		Description: "kept",
		Priority:    PriorityHigh,
	}

	applyTopicFields(topic, &TopicRequest{
		Name:     strPtr("Advanced Graphs"),
		Progress: intPtr(25),
	})

	assert.Equal(t, "Advanced Graphs", topic.Name)
	assert.Equal(t, 25, topic.Progress)
	assert.Equal(t, CategoryDSA, topic.Category)
	assert.Equal(t, "kept", topic.Description)
	assert.Equal(t, PriorityHigh, topic.Priority)
}

func TestApplySubtopicFields(t *testing.T) {
	subtopic := &Subtopic{
		Name:   "Arrays",
		Status: StatusNotStarted,
		Notes:  "kept",
	}

	applySubtopicFields(subtopic, &SubtopicRequest{
		Status:    strPtr("Completed"),
		TimeSpent: floatPtr(2.5),
	})

	require.Equal(t, StatusCompleted, subtopic.Status)
	assert.Equal(t, 2.5, subtopic.TimeSpent)
	assert.Equal(t, "Arrays", subtopic.Name)
	assert.Equal(t, "kept", subtopic.Notes)
}
