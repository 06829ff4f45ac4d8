package notificationsController

import (
	"context"
	"errors"

	"studytrack/internal/logger"
	. "studytrack/internal/models"
	"studytrack/internal/services"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("notifications unavailable")
)

var reminderTypes = map[string]bool{
	"daily":     true,
	"streak":    true,
	"goal":      true,
	"milestone": true,
}

type SendReminderRequest struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type NotificationsControllerInterface interface {
	SendReminder(ctx context.Context, user *User, request *SendReminderRequest) error
}

type NotificationsController struct {
	mailer *services.MailerService
	log    logger.Logger
}

func New(services services.Service) NotificationsControllerInterface {
	return &NotificationsController{
		mailer: services.Mailer,
		log:    logger.New("notificationsController"),
	}
}

// SendReminder delivers an on-demand reminder email to the requesting user.
func (c *NotificationsController) SendReminder(
	ctx context.Context,
	user *User,
	request *SendReminderRequest,
) error {
	log := c.log.Function("SendReminder")

	if !reminderTypes[request.Type] {
		return log.ErrorWithType(ErrValidation, "invalid reminder type", "type", request.Type)
	}

	if !c.mailer.Enabled() {
		return log.ErrorWithType(ErrUnavailable, "mail delivery is not configured")
	}

	if err := c.mailer.SendReminder(user.Email, user.Name, request.Type, request.Message); err != nil {
		return log.Err("failed to send reminder", err, "userID", user.ID)
	}

	return nil
}
