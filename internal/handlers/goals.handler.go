package handlers

import (
	"studytrack/internal/app"
	goalsController "studytrack/internal/controllers/goals"
	"studytrack/internal/handlers/middleware"
	"studytrack/internal/logger"
	"studytrack/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GoalsHandler struct {
	Handler
	goalsController goalsController.GoalsControllerInterface
	tokenService    *services.TokenService
}

func NewGoalsHandler(app app.App, router fiber.Router) *GoalsHandler {
	log := logger.New("handlers").File("goals_handler")
	return &GoalsHandler{
		goalsController: app.Controllers.Goals,
		tokenService:    app.Services.Token,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *GoalsHandler) Register() {
	goals := h.router.Group("/goals", h.middleware.RequireAuth(h.tokenService))

	goals.Get("/", h.listGoals)
	goals.Post("/", h.createGoal)
	goals.Get("/:id", h.getGoal)
	goals.Put("/:id", h.updateGoal)
	goals.Delete("/:id", h.deleteGoal)
}

func (h *GoalsHandler) listGoals(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	goals, err := h.goalsController.ListGoals(c.UserContext(), user)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"goals": goals})
}

func (h *GoalsHandler) createGoal(c *fiber.Ctx) error {
	log := h.log.Function("createGoal")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var request goalsController.GoalRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalsController.CreateGoal(c.UserContext(), user, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"goal": goal})
}

func (h *GoalsHandler) getGoal(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal id",
		})
	}

	goal, err := h.goalsController.GetGoal(c.UserContext(), user, goalID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"goal": goal})
}

func (h *GoalsHandler) updateGoal(c *fiber.Ctx) error {
	log := h.log.Function("updateGoal")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal id",
		})
	}

	var request goalsController.GoalRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalsController.UpdateGoal(c.UserContext(), user, goalID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"goal": goal})
}

func (h *GoalsHandler) deleteGoal(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal id",
		})
	}

	if err := h.goalsController.DeleteGoal(c.UserContext(), user, goalID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
