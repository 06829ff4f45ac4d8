package app

import (
	"context"
	"time"

	"studytrack/config"
	"studytrack/internal/controllers"
	"studytrack/internal/database"
	"studytrack/internal/handlers/middleware"
	"studytrack/internal/jobs"
	"studytrack/internal/logger"
	"studytrack/internal/repositories"
	"studytrack/internal/services"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Location is the reference time zone for calendar-day normalization.
	Location *time.Location

	Services     services.Service
	Repositories repositories.Repository
	Controllers  controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	location, err := config.Location()
	if err != nil {
		return &App{}, log.Err("failed to resolve time zone", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	service, err := services.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	repos := repositories.New(db)
	middleware := middleware.New(db, config, repos)
	controllers := controllers.New(service, repos, location)

	if config.SchedulerEnabled {
		reminderJob := jobs.NewStudyReminderJob(repos.User, service.Mailer, services.DailyReminder)
		if err := service.Scheduler.AddJob(reminderJob); err != nil {
			return &App{}, log.Err("failed to register study reminder job", err)
		}

		if err := service.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:     db,
		Config:       config,
		Location:     location,
		Middleware:   middleware,
		Services:     service,
		Repositories: repos,
		Controllers:  controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	if a.Location == nil {
		return log.ErrMsg("location is nil")
	}

	nilChecks := []any{
		a.Services.Token,
		a.Services.Mailer,
		a.Services.Scheduler,
		a.Controllers.Auth,
		a.Controllers.Logs,
		a.Controllers.Topics,
		a.Controllers.Goals,
		a.Controllers.Notifications,
		a.Repositories.User,
		a.Repositories.DailyLog,
		a.Repositories.Topic,
		a.Repositories.Goal,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
