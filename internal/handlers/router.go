package handlers

import (
	"errors"

	"studytrack/internal/app"
	authController "studytrack/internal/controllers/auth"
	goalsController "studytrack/internal/controllers/goals"
	logsController "studytrack/internal/controllers/logs"
	notificationsController "studytrack/internal/controllers/notifications"
	topicsController "studytrack/internal/controllers/topics"
	"studytrack/internal/handlers/middleware"
	"studytrack/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()
	NewLogsHandler(*app, api).Register()
	NewTopicsHandler(*app, api).Register()
	NewGoalsHandler(*app, api).Register()
	NewNotificationsHandler(*app, api).Register()

	return nil
}

// errorResponse maps controller sentinel errors onto HTTP statuses. Anything
// unmatched is a 500 with a generic body so internals never leak to clients.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, logsController.ErrValidation),
		errors.Is(err, topicsController.ErrValidation),
		errors.Is(err, goalsController.ErrValidation),
		errors.Is(err, notificationsController.ErrValidation),
		errors.Is(err, authController.ErrValidation):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, logsController.ErrNotFound),
		errors.Is(err, topicsController.ErrNotFound),
		errors.Is(err, goalsController.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, logsController.ErrConflict):
		status = fiber.StatusConflict
		message = err.Error()
	case errors.Is(err, authController.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		message = "Invalid credentials"
	case errors.Is(err, authController.ErrEmailTaken):
		status = fiber.StatusConflict
		message = err.Error()
	case errors.Is(err, notificationsController.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}
