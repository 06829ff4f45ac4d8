package handlers

import (
	"studytrack/internal/app"
	notificationsController "studytrack/internal/controllers/notifications"
	"studytrack/internal/handlers/middleware"
	"studytrack/internal/logger"
	"studytrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type NotificationsHandler struct {
	Handler
	notificationsController notificationsController.NotificationsControllerInterface
	tokenService            *services.TokenService
}

func NewNotificationsHandler(app app.App, router fiber.Router) *NotificationsHandler {
	log := logger.New("handlers").File("notifications_handler")
	return &NotificationsHandler{
		notificationsController: app.Controllers.Notifications,
		tokenService:            app.Services.Token,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *NotificationsHandler) Register() {
	notifications := h.router.Group("/notifications", h.middleware.RequireAuth(h.tokenService))

	notifications.Post("/reminder", h.sendReminder)
}

func (h *NotificationsHandler) sendReminder(c *fiber.Ctx) error {
	log := h.log.Function("sendReminder")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var request notificationsController.SendReminderRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.notificationsController.SendReminder(c.UserContext(), user, &request); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Reminder sent"})
}
