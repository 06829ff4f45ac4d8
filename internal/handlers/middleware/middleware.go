package middleware

import (
	"studytrack/config"
	"studytrack/internal/database"
	"studytrack/internal/logger"
	"studytrack/internal/repositories"
)

type Middleware struct {
	DB       database.DB
	userRepo repositories.UserRepository
	Config   config.Config
	log      logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
) Middleware {
	return Middleware{
		DB:       db,
		userRepo: repos.User,
		Config:   config,
		log:      logger.New("middleware"),
	}
}
