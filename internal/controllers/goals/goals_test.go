package goalsController

import (
	"testing"
	"time"

	. "studytrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateGoalRequest(t *testing.T) {
	tests := []struct {
		name    string
		request GoalRequest
		wantErr bool
	}{
		{name: "empty request", request: GoalRequest{}},
		{name: "valid status", request: GoalRequest{Status: strPtr("Paused")}},
		{name: "unknown status", request: GoalRequest{Status: strPtr("Abandoned")}, wantErr: true},
		{name: "negative progress", request: GoalRequest{Progress: intPtr(-5)}, wantErr: true},
		{name: "progress over 100", request: GoalRequest{Progress: intPtr(150)}, wantErr: true},
		{
			name: "milestone without title",
			request: GoalRequest{
				Milestones: &[]Milestone{{Completed: true}},
			},
			wantErr: true,
		},
		{
			name: "valid milestones",
			request: GoalRequest{
				Milestones: &[]Milestone{{Title: "Finish chapter 1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGoalRequest(&tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyGoalFieldsMergesOnlySubmittedFields(t *testing.T) {
	target := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := &Goal{
		Title:       "Master system design",
		Description: "kept",
		Status:      GoalActive,
		TargetDate:  target,
	}

	applyGoalFields(goal, &GoalRequest{
		Status:   strPtr("Completed"),
		Progress: intPtr(100),
	})

	assert.Equal(t, GoalCompleted, goal.Status)
	assert.Equal(t, 100, goal.Progress)
	assert.Equal(t, "Master system design", goal.Title)
	assert.Equal(t, "kept", goal.Description)
	assert.Equal(t, target, goal.TargetDate)
}
