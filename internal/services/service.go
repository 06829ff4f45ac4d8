package services

import (
	"studytrack/config"
)

type Service struct {
	Token     *TokenService
	Mailer    *MailerService
	Scheduler *SchedulerService
}

func New(config config.Config) (Service, error) {
	tokenService, err := NewTokenService(config)
	if err != nil {
		return Service{}, err
	}

	location, err := config.Location()
	if err != nil {
		return Service{}, err
	}

	return Service{
		Token:     tokenService,
		Mailer:    NewMailerService(config),
		Scheduler: NewSchedulerService(config.ReminderAt, location),
	}, nil
}
