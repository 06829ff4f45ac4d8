package models

import (
	"time"

	"gorm.io/gorm"
)

// UserSettings are user-editable preferences, replaced wholesale by the
// settings endpoint.
type UserSettings struct {
	DailyReminder bool   `gorm:"default:false"             json:"dailyReminder"`
	ReminderTime  string `gorm:"type:text;default:'08:00'" json:"reminderTime"`
}

// UserStats is the denormalized per-user stats cache. TotalQuestions is
// maintained by atomic deltas on log upserts; the streak fields are overwritten
// from each recomputation over log history. None of these are authoritative,
// the log table is.
type UserStats struct {
	TotalQuestions int `gorm:"default:0" json:"totalQuestions"`
	CurrentStreak  int `gorm:"default:0" json:"currentStreak"`
	LongestStreak  int `gorm:"default:0" json:"longestStreak"`
}

type User struct {
	BaseUUIDModel
	Name      string       `gorm:"type:text;not null"                      json:"name"`
	Email     string       `gorm:"type:text;uniqueIndex;not null"          json:"email"`
	Password  string       `gorm:"type:text;not null"                      json:"-"`
	StartDate time.Time    `gorm:"not null"                                json:"startDate"`
	Settings  UserSettings `gorm:"embedded;embeddedPrefix:settings_"       json:"settings"`
	Stats     UserStats    `gorm:"embedded;embeddedPrefix:stats_"          json:"stats"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.StartDate.IsZero() {
		u.StartDate = time.Now()
	}
	return nil
}

// UserProfile is the public shape returned by auth endpoints.
type UserProfile struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	StartDate time.Time    `json:"startDate"`
	Settings  UserSettings `json:"settings"`
	Stats     UserStats    `json:"stats"`
}

func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		StartDate: u.StartDate,
		Settings:  u.Settings,
		Stats:     u.Stats,
	}
}
