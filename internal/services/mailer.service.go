package services

import (
	"fmt"

	"studytrack/config"
	"studytrack/internal/logger"

	"gopkg.in/gomail.v2"
)

// MailerService sends reminder email over SMTP. When SMTP is not configured
// the service stays disabled and sends fail fast.
type MailerService struct {
	dialer *gomail.Dialer
	from   string
	log    logger.Logger
}

func NewMailerService(config config.Config) *MailerService {
	log := logger.New("mailerService")

	service := &MailerService{
		from: config.SMTPFrom,
		log:  log,
	}

	if config.SMTPHost == "" {
		log.Warn("SMTP not configured, mailer disabled")
		return service
	}

	service.dialer = gomail.NewDialer(
		config.SMTPHost,
		config.SMTPPort,
		config.SMTPUser,
		config.SMTPPassword,
	)

	return service
}

func (s *MailerService) Enabled() bool {
	return s.dialer != nil
}

func (s *MailerService) SendReminder(to, name, reminderType, message string) error {
	log := s.log.Function("SendReminder")

	if !s.Enabled() {
		return log.ErrMsg("mailer is not configured")
	}

	if message == "" {
		message = "Time to continue your learning journey!"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Learning Reminder - %s", reminderType))
	m.SetBody("text/html", reminderBody(name, message))

	if err := s.dialer.DialAndSend(m); err != nil {
		return log.Err("failed to send reminder email", err, "to", to, "type", reminderType)
	}

	log.Info("Reminder email sent", "to", to, "type", reminderType)
	return nil
}

func reminderBody(name, message string) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
          <h2 style="color: #3B82F6;">Hello %s!</h2>
          <p>%s</p>
          <div style="background-color: #F3F4F6; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <h3>Your Learning Progress</h3>
            <p>Keep up the momentum and reach your goals!</p>
          </div>
          <p style="color: #6B7280;">This reminder was sent from your productivity tracker.</p>
        </div>
    `, name, message)
}
