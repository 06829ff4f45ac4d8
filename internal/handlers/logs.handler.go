package handlers

import (
	"studytrack/internal/app"
	logsController "studytrack/internal/controllers/logs"
	"studytrack/internal/handlers/middleware"
	"studytrack/internal/logger"
	"studytrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type LogsHandler struct {
	Handler
	logsController logsController.LogsControllerInterface
	tokenService   *services.TokenService
}

func NewLogsHandler(app app.App, router fiber.Router) *LogsHandler {
	log := logger.New("handlers").File("logs_handler")
	return &LogsHandler{
		logsController: app.Controllers.Logs,
		tokenService:   app.Services.Token,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *LogsHandler) Register() {
	logs := h.router.Group("/logs", h.middleware.RequireAuth(h.tokenService))

	logs.Get("/", h.getLogs)
	logs.Post("/", h.upsertLog)
	logs.Get("/streak", h.getStreak)
	logs.Get("/analytics", h.getAnalytics)
}

// upsertLog accepts one submission per calendar day. The first submission
// creates the record, later ones patch it in place.
func (h *LogsHandler) upsertLog(c *fiber.Ctx) error {
	log := h.log.Function("upsertLog")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var request logsController.UpsertLogRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := h.logsController.UpsertLog(c.UserContext(), user, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"log": entry})
}

func (h *LogsHandler) getLogs(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	query := logsController.LogsQuery{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Limit:     c.QueryInt("limit", logsController.DefaultLogLimit),
	}

	logs, err := h.logsController.GetLogs(c.UserContext(), user, query)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"logs": logs})
}

func (h *LogsHandler) getStreak(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	streak, err := h.logsController.GetStreak(c.UserContext(), user)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(streak)
}

func (h *LogsHandler) getAnalytics(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	period := c.QueryInt("period", logsController.DefaultAnalyticsPeriod)

	analytics, err := h.logsController.GetAnalytics(c.UserContext(), user, period)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(analytics)
}
