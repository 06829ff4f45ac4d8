package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "Active"
	GoalCompleted GoalStatus = "Completed"
	GoalPaused    GoalStatus = "Paused"
	GoalCancelled GoalStatus = "Cancelled"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalPaused, GoalCancelled:
		return true
	}
	return false
}

type Milestone struct {
	Title         string     `json:"title"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

type Goal struct {
	BaseUUIDModel
	UserID      uuid.UUID                      `gorm:"type:uuid;not null;index"   json:"userId"`
	User        User                           `gorm:"foreignKey:UserID"          json:"-"`
	Title       string                         `gorm:"type:text;not null"         json:"title"`
	Description string                         `gorm:"type:text"                  json:"description,omitempty"`
	Category    string                         `gorm:"type:text"                  json:"category,omitempty"`
	TargetDate  time.Time                      `gorm:"not null"                   json:"targetDate"`
	Progress    int                            `gorm:"default:0"                  json:"progress"`
	Status      GoalStatus                     `gorm:"type:text;default:'Active'" json:"status"`
	Milestones  datatypes.JSONSlice[Milestone] `                                  json:"milestones"`
}
