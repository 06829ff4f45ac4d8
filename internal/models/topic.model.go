package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TopicCategory string

const (
	CategoryDSA            TopicCategory = "DSA"
	CategorySystemDesign   TopicCategory = "System Design"
	CategoryDesignPatterns TopicCategory = "Design Patterns"
	CategoryGenerativeAI   TopicCategory = "Generative AI"
	CategoryAgenticAI      TopicCategory = "Agentic AI"
)

func (c TopicCategory) Valid() bool {
	switch c {
	case CategoryDSA, CategorySystemDesign, CategoryDesignPatterns, CategoryGenerativeAI, CategoryAgenticAI:
		return true
	}
	return false
}

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "Not Started"
	StatusInProgress ProgressStatus = "In Progress"
	StatusCompleted  ProgressStatus = "Completed"
)

func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type ResourceType string

const (
	ResourceLink    ResourceType = "Link"
	ResourceVideo   ResourceType = "Video"
	ResourceArticle ResourceType = "Article"
	ResourceBook    ResourceType = "Book"
)

func (r ResourceType) Valid() bool {
	switch r {
	case ResourceLink, ResourceVideo, ResourceArticle, ResourceBook:
		return true
	}
	return false
}

type Subtopic struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Status    ProgressStatus `json:"status"`
	StartDate *time.Time     `json:"startDate,omitempty"`
	EndDate   *time.Time     `json:"endDate,omitempty"`
	TimeSpent float64        `json:"timeSpent"` // hours
	Notes     string         `json:"notes,omitempty"`
}

type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

type Topic struct {
	BaseUUIDModel
	UserID         uuid.UUID                     `gorm:"type:uuid;not null;index"        json:"userId"`
	User           User                          `gorm:"foreignKey:UserID"               json:"-"`
	Category       TopicCategory                 `gorm:"type:text;not null"              json:"category"`
	Name           string                        `gorm:"type:text;not null"              json:"name"`
	Description    string                        `gorm:"type:text"                       json:"description,omitempty"`
	Subtopics      datatypes.JSONSlice[Subtopic] `                                       json:"subtopics"`
	Status         ProgressStatus                `gorm:"type:text;default:'Not Started'" json:"status"`
	StartDate      *time.Time                    `                                       json:"startDate,omitempty"`
	EndDate        *time.Time                    `                                       json:"endDate,omitempty"`
	TimeSpent      float64                       `gorm:"default:0"                       json:"timeSpent"` // hours
	AssociatedTags datatypes.JSONSlice[string]   `                                       json:"associatedTags"`
	Priority       Priority                      `gorm:"type:text;default:'Medium'"      json:"priority"`
	Resources      datatypes.JSONSlice[Resource] `                                       json:"resources"`
	Progress       int                           `gorm:"default:0"                       json:"progress"`
}
