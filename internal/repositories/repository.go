package repositories

import (
	"studytrack/internal/database"
)

type Repository struct {
	User     UserRepository
	DailyLog DailyLogRepository
	Topic    TopicRepository
	Goal     GoalRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:     NewUserRepository(db),
		DailyLog: NewDailyLogRepository(db),
		Topic:    NewTopicRepository(db),
		Goal:     NewGoalRepository(db),
	}
}
