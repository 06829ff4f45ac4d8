package controllers

import (
	"time"

	"studytrack/internal/repositories"
	"studytrack/internal/services"

	authController "studytrack/internal/controllers/auth"
	goalsController "studytrack/internal/controllers/goals"
	logsController "studytrack/internal/controllers/logs"
	notificationsController "studytrack/internal/controllers/notifications"
	topicsController "studytrack/internal/controllers/topics"
)

type Controllers struct {
	Auth          authController.AuthControllerInterface
	Logs          logsController.LogsControllerInterface
	Topics        topicsController.TopicsControllerInterface
	Goals         goalsController.GoalsControllerInterface
	Notifications notificationsController.NotificationsControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	location *time.Location,
) Controllers {
	return Controllers{
		Auth:          authController.New(services, repos),
		Logs:          logsController.New(repos, location),
		Topics:        topicsController.New(repos),
		Goals:         goalsController.New(repos),
		Notifications: notificationsController.New(services),
	}
}
