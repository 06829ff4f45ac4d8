package handlers

import (
	"studytrack/internal/app"
	authController "studytrack/internal/controllers/auth"
	"studytrack/internal/handlers/middleware"
	"studytrack/internal/logger"
	"studytrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	authController authController.AuthControllerInterface
	tokenService   *services.TokenService
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	log := logger.New("handlers").File("auth_handler")
	return &AuthHandler{
		authController: app.Controllers.Auth,
		tokenService:   app.Services.Token,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	auth := h.router.Group("/auth")

	// Public endpoints
	auth.Post("/register", h.register)
	auth.Post("/login", h.login)

	// Protected endpoints
	protected := auth.Group("/", h.middleware.RequireAuth(h.tokenService))
	protected.Get("/profile", h.getProfile)
	protected.Put("/settings", h.updateSettings)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	log := h.log.Function("register")

	var request authController.RegisterRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := h.authController.Register(c.UserContext(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var request authController.LoginRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := h.authController.Login(c.UserContext(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(response)
}

func (h *AuthHandler) getProfile(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	profile, err := h.authController.GetProfile(c.UserContext(), user)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"user": profile})
}

func (h *AuthHandler) updateSettings(c *fiber.Ctx) error {
	log := h.log.Function("updateSettings")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var request authController.UpdateSettingsRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := h.authController.UpdateSettings(c.UserContext(), user, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"user": profile})
}
