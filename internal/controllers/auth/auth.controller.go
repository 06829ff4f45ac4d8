package authController

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"studytrack/internal/logger"
	. "studytrack/internal/models"
	"studytrack/internal/repositories"
	"studytrack/internal/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 8

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UpdateSettingsRequest struct {
	DailyReminder *bool   `json:"dailyReminder,omitempty"`
	ReminderTime  *string `json:"reminderTime,omitempty"`
}

type AuthControllerInterface interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	GetProfile(ctx context.Context, user *User) (*UserProfile, error)
	UpdateSettings(ctx context.Context, user *User, request *UpdateSettingsRequest) (*UserProfile, error)
}

type AuthController struct {
	userRepo     repositories.UserRepository
	tokenService *services.TokenService
	log          logger.Logger
}

func New(
	services services.Service,
	repos repositories.Repository,
) AuthControllerInterface {
	return &AuthController{
		userRepo:     repos.User,
		tokenService: services.Token,
		log:          logger.New("authController"),
	}
}

func (c *AuthController) Register(
	ctx context.Context,
	request *RegisterRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Register")

	if err := validateRegisterRequest(request); err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	email := normalizeEmail(request.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Name:     strings.TrimSpace(request.Name),
		Email:    email,
		Password: string(hash),
	}

	if err := c.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, log.ErrorWithType(ErrEmailTaken, "email already registered", "email", email)
		}
		return nil, log.Err("failed to create user", err, "email", email)
	}

	token, err := c.tokenService.Generate(user.ID)
	if err != nil {
		return nil, log.Err("failed to generate token", err, "userID", user.ID)
	}

	log.Info("user registered", "userID", user.ID)

	return &AuthResponse{Token: token, User: user.ToProfile()}, nil
}

// Login verifies the credentials and issues a fresh token. Unknown email and
// wrong password produce the same error so the response never reveals which
// part failed.
func (c *AuthController) Login(
	ctx context.Context,
	request *LoginRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Login")

	if request.Email == "" || request.Password == "" {
		return nil, log.ErrorWithType(ErrValidation, "email and password are required")
	}

	user, err := c.userRepo.GetByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, log.ErrorWithType(ErrInvalidCredentials, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, log.ErrorWithType(ErrInvalidCredentials, "invalid credentials", "userID", user.ID)
	}

	token, err := c.tokenService.Generate(user.ID)
	if err != nil {
		return nil, log.Err("failed to generate token", err, "userID", user.ID)
	}

	return &AuthResponse{Token: token, User: user.ToProfile()}, nil
}

func (c *AuthController) GetProfile(ctx context.Context, user *User) (*UserProfile, error) {
	profile := user.ToProfile()
	return &profile, nil
}

func (c *AuthController) UpdateSettings(
	ctx context.Context,
	user *User,
	request *UpdateSettingsRequest,
) (*UserProfile, error) {
	log := c.log.Function("UpdateSettings")

	settings := user.Settings
	if request.DailyReminder != nil {
		settings.DailyReminder = *request.DailyReminder
	}
	if request.ReminderTime != nil {
		if _, err := time.Parse("15:04", *request.ReminderTime); err != nil {
			return nil, log.ErrorWithType(ErrValidation, "reminderTime must be HH:MM")
		}
		settings.ReminderTime = *request.ReminderTime
	}

	if err := c.userRepo.UpdateSettings(ctx, user.ID, settings); err != nil {
		return nil, log.Err("failed to update settings", err, "userID", user.ID)
	}

	user.Settings = settings
	profile := user.ToProfile()

	return &profile, nil
}

func validateRegisterRequest(request *RegisterRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return errors.New("a valid email is required")
	}
	if len(request.Password) < MinPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
