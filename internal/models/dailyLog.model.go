package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Mood string

const (
	MoodExcellent    Mood = "Excellent"
	MoodGood         Mood = "Good"
	MoodAverage      Mood = "Average"
	MoodBelowAverage Mood = "Below Average"
	MoodPoor         Mood = "Poor"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodExcellent, MoodGood, MoodAverage, MoodBelowAverage, MoodPoor:
		return true
	}
	return false
}

// LinkedTopic is an informational join against the topics table, never an
// ownership edge. TopicName and TopicCategory are resolved at read time for
// presentation and are not persisted.
type LinkedTopic struct {
	TopicID        uuid.UUID `json:"topicId"`
	SubtopicName   string    `json:"subtopicName,omitempty"`
	QuestionsCount int       `json:"questionsCount,omitempty"`
	TopicName      string    `json:"topicName,omitempty"`
	TopicCategory  string    `json:"topicCategory,omitempty"`
}

// DailyLog holds one activity record per user per calendar day. Date is
// normalized to start of day in the process reference time zone; the composite
// unique index is the sole concurrency guard for first-time submissions.
type DailyLog struct {
	BaseUUIDModel
	UserID          uuid.UUID                        `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date" json:"userId"`
	User            User                             `gorm:"foreignKey:UserID"                                       json:"-"`
	Date            time.Time                        `gorm:"not null;uniqueIndex:idx_daily_logs_user_date"           json:"date"`
	QuestionsSolved int                              `gorm:"not null;default:0"                                      json:"questionsSolved"`
	TimeStudied     int                              `gorm:"not null;default:0"                                      json:"timeStudied"` // minutes
	Notes           string                           `gorm:"type:text"                                               json:"notes,omitempty"`
	LinkedTopics    datatypes.JSONSlice[LinkedTopic] `                                                               json:"linkedTopics"`
	Mood            Mood                             `gorm:"type:text"                                               json:"mood,omitempty"`
	Achievements    datatypes.JSONSlice[string]      `                                                               json:"achievements"`
}
