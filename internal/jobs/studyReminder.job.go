package jobs

import (
	"context"

	"studytrack/internal/logger"
	"studytrack/internal/repositories"
	"studytrack/internal/services"
)

// StudyReminderJob emails every user who opted into daily reminders. A failed
// send for one user does not block the rest.
type StudyReminderJob struct {
	userRepo repositories.UserRepository
	mailer   *services.MailerService
	log      logger.Logger
	schedule services.Schedule
}

func NewStudyReminderJob(
	userRepo repositories.UserRepository,
	mailer *services.MailerService,
	schedule services.Schedule,
) *StudyReminderJob {
	return &StudyReminderJob{
		userRepo: userRepo,
		mailer:   mailer,
		log:      logger.New("studyReminderJob"),
		schedule: schedule,
	}
}

func (j *StudyReminderJob) Name() string {
	return "StudyReminder"
}

func (j *StudyReminderJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	if !j.mailer.Enabled() {
		log.Warn("mailer disabled, skipping reminder run")
		return nil
	}

	users, err := j.userRepo.GetReminderRecipients(ctx)
	if err != nil {
		return log.Err("failed to load reminder recipients", err)
	}

	sent := 0
	for _, user := range users {
		if err := j.mailer.SendReminder(user.Email, user.Name, "Daily", ""); err != nil {
			log.Er("failed to send reminder", err, "userID", user.ID)
			continue
		}
		sent++
	}

	log.Info("Reminder run complete", "recipients", len(users), "sent", sent)
	return nil
}

func (j *StudyReminderJob) Schedule() services.Schedule {
	return j.schedule
}
