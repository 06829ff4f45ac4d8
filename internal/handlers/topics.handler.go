package handlers

import (
	"studytrack/internal/app"
	topicsController "studytrack/internal/controllers/topics"
	"studytrack/internal/handlers/middleware"
	"studytrack/internal/logger"
	"studytrack/internal/repositories"
	"studytrack/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TopicsHandler struct {
	Handler
	topicsController topicsController.TopicsControllerInterface
	tokenService     *services.TokenService
}

func NewTopicsHandler(app app.App, router fiber.Router) *TopicsHandler {
	log := logger.New("handlers").File("topics_handler")
	return &TopicsHandler{
		topicsController: app.Controllers.Topics,
		tokenService:     app.Services.Token,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *TopicsHandler) Register() {
	topics := h.router.Group("/topics", h.middleware.RequireAuth(h.tokenService))

	topics.Get("/", h.listTopics)
	topics.Post("/", h.createTopic)
	topics.Get("/:id", h.getTopic)
	topics.Put("/:id", h.updateTopic)
	topics.Delete("/:id", h.deleteTopic)
	topics.Put("/:id/subtopics/:subtopicId", h.updateSubtopic)
}

func (h *TopicsHandler) listTopics(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	filter := repositories.TopicFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	topics, err := h.topicsController.ListTopics(c.UserContext(), user, filter)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"topics": topics})
}

func (h *TopicsHandler) createTopic(c *fiber.Ctx) error {
	log := h.log.Function("createTopic")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var request topicsController.TopicRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	topic, err := h.topicsController.CreateTopic(c.UserContext(), user, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"topic": topic})
}

func (h *TopicsHandler) getTopic(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic id",
		})
	}

	topic, err := h.topicsController.GetTopic(c.UserContext(), user, topicID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"topic": topic})
}

func (h *TopicsHandler) updateTopic(c *fiber.Ctx) error {
	log := h.log.Function("updateTopic")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic id",
		})
	}

	var request topicsController.TopicRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	topic, err := h.topicsController.UpdateTopic(c.UserContext(), user, topicID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"topic": topic})
}

func (h *TopicsHandler) deleteTopic(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic id",
		})
	}

	if err := h.topicsController.DeleteTopic(c.UserContext(), user, topicID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TopicsHandler) updateSubtopic(c *fiber.Ctx) error {
	log := h.log.Function("updateSubtopic")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic id",
		})
	}

	subtopicID, err := uuid.Parse(c.Params("subtopicId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subtopic id",
		})
	}

	var request topicsController.SubtopicRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	topic, err := h.topicsController.UpdateSubtopic(c.UserContext(), user, topicID, subtopicID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"topic": topic})
}
