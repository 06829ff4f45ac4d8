package logsController

import (
	"context"
	"errors"
	"time"

	"studytrack/internal/logger"
	. "studytrack/internal/models"
	"studytrack/internal/repositories"
	"studytrack/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultLogLimit        = 30
	DefaultAnalyticsPeriod = 30
	MaxNotesLength         = 2000
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// UpsertLogRequest carries a merge-patch submission for one calendar day.
// Nil fields leave the stored value untouched; on first creation they fall
// back to schema defaults.
type UpsertLogRequest struct {
	Date            string         `json:"date"`
	QuestionsSolved *int           `json:"questionsSolved,omitempty"`
	TimeStudied     *int           `json:"timeStudied,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
	LinkedTopics    *[]LinkedTopic `json:"linkedTopics,omitempty"`
	Mood            *string        `json:"mood,omitempty"`
	Achievements    *[]string      `json:"achievements,omitempty"`
}

type LogsQuery struct {
	StartDate string
	EndDate   string
	Limit     int
}

type StreakResponse struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

type LogsControllerInterface interface {
	UpsertLog(ctx context.Context, user *User, request *UpsertLogRequest) (*DailyLog, error)
	GetLogs(ctx context.Context, user *User, query LogsQuery) ([]*DailyLog, error)
	GetStreak(ctx context.Context, user *User) (*StreakResponse, error)
	GetAnalytics(ctx context.Context, user *User, period int) (*Analytics, error)
}

type LogsController struct {
	logRepo   repositories.DailyLogRepository
	topicRepo repositories.TopicRepository
	userRepo  repositories.UserRepository
	location  *time.Location
}

func New(
	repos repositories.Repository,
	location *time.Location,
) LogsControllerInterface {
	return &LogsController{
		logRepo:   repos.DailyLog,
		topicRepo: repos.Topic,
		userRepo:  repos.User,
		location:  location,
	}
}

// parseDay parses a submitted date and truncates it to the calendar day in
// the reference zone. Both RFC3339 timestamps and bare dates are accepted.
func parseDay(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return time.Time{}, errors.New("invalid date format, expected RFC3339 or YYYY-MM-DD")
		}
	}

	return utils.StartOfDay(t, loc), nil
}

// applyLogFields merges the submitted fields onto a log record, leaving every
// absent field unchanged. This is the named merge-patch contract of the upsert
// endpoint.
func applyLogFields(entry *DailyLog, request *UpsertLogRequest) {
	if request.QuestionsSolved != nil {
		entry.QuestionsSolved = *request.QuestionsSolved
	}
	if request.TimeStudied != nil {
		entry.TimeStudied = *request.TimeStudied
	}
	if request.Notes != nil {
		entry.Notes = *request.Notes
	}
	if request.LinkedTopics != nil {
		entry.LinkedTopics = *request.LinkedTopics
	}
	if request.Mood != nil {
		entry.Mood = Mood(*request.Mood)
	}
	if request.Achievements != nil {
		entry.Achievements = *request.Achievements
	}
}

func validateUpsertRequest(request *UpsertLogRequest) error {
	if request.QuestionsSolved != nil && *request.QuestionsSolved < 0 {
		return errors.New("questionsSolved cannot be negative")
	}
	if request.TimeStudied != nil && *request.TimeStudied < 0 {
		return errors.New("timeStudied cannot be negative")
	}
	if request.Notes != nil && len(*request.Notes) > MaxNotesLength {
		return errors.New("notes exceed maximum length")
	}
	if request.Mood != nil && *request.Mood != "" && !Mood(*request.Mood).Valid() {
		return errors.New("invalid mood")
	}
	return nil
}

// UpsertLog creates or updates the user's record for the submitted calendar
// day. The unique (user, date) index is the only concurrency guard: a lost
// first-submission race is surfaced as a conflict for the caller to resubmit,
// never resolved silently. The denormalized question counter receives the
// delta against the previously stored value, so edits do not double-count.
func (c *LogsController) UpsertLog(
	ctx context.Context,
	user *User,
	request *UpsertLogRequest,
) (*DailyLog, error) {
	log := logger.NewWithContext(ctx, "logsController").Function("UpsertLog")

	if err := validateUpsertRequest(request); err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	day, err := parseDay(request.Date, c.location)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	existing, err := c.logRepo.GetByUserAndDate(ctx, user.ID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to look up daily log", err, "userID", user.ID, "date", day)
	}

	var entry *DailyLog
	var delta int

	if existing == nil {
		entry = &DailyLog{
			UserID: user.ID,
			Date:   day,
		}
		applyLogFields(entry, request)

		if err := c.logRepo.Create(ctx, entry); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, log.ErrorWithType(
					ErrConflict,
					"a log for this day already exists, resubmit to update",
					"userID", user.ID,
					"date", day,
				)
			}
			return nil, log.Err("failed to create daily log", err, "userID", user.ID, "date", day)
		}

		delta = entry.QuestionsSolved
	} else {
		previous := existing.QuestionsSolved
		applyLogFields(existing, request)

		if err := c.logRepo.Update(ctx, existing); err != nil {
			return nil, log.Err("failed to update daily log", err, "userID", user.ID, "date", day)
		}

		entry = existing
		delta = entry.QuestionsSolved - previous
	}

	if delta != 0 {
		if err := c.userRepo.IncrementTotalQuestions(ctx, user.ID, delta); err != nil {
			// The log row is committed; a failed counter bump is recoverable
			// by recomputation, not worth failing the request.
			log.Er("failed to update question counter", err, "userID", user.ID, "delta", delta)
		}
	}

	return entry, nil
}

// GetLogs returns the user's records most recent first, bounded by the
// optional inclusive date range, with linked topics resolved for display.
func (c *LogsController) GetLogs(
	ctx context.Context,
	user *User,
	query LogsQuery,
) ([]*DailyLog, error) {
	log := logger.NewWithContext(ctx, "logsController").Function("GetLogs")

	if query.Limit <= 0 {
		return nil, log.ErrorWithType(ErrValidation, "limit must be a positive integer")
	}

	var dateRange repositories.DateRange
	if query.StartDate != "" {
		start, err := parseDay(query.StartDate, c.location)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid startDate")
		}
		dateRange.Start = &start
	}
	if query.EndDate != "" {
		end, err := parseDay(query.EndDate, c.location)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid endDate")
		}
		dateRange.End = &end
	}

	logs, err := c.logRepo.GetRange(ctx, user.ID, dateRange, query.Limit)
	if err != nil {
		return nil, log.Err("failed to get daily logs", err, "userID", user.ID)
	}

	if err := c.resolveLinkedTopics(ctx, logs); err != nil {
		// Enrichment is presentational; a failed lookup leaves the
		// references unresolved rather than failing the read.
		log.Warn("failed to resolve linked topics", "userID", user.ID, "error", err)
	}

	return logs, nil
}

// GetStreak recomputes both streak values from log history and persists them
// over the cached pair. The recomputation is the source of truth; the cache is
// only a fast-read copy.
func (c *LogsController) GetStreak(ctx context.Context, user *User) (*StreakResponse, error) {
	log := logger.NewWithContext(ctx, "logsController").Function("GetStreak")

	logs, err := c.logRepo.GetStreakLogs(ctx, user.ID)
	if err != nil {
		return nil, log.Err("failed to get streak logs", err, "userID", user.ID)
	}

	today := utils.StartOfDay(time.Now(), c.location)
	currentStreak, longestStreak := CalculateStreaks(logs, today, c.location)

	if err := c.userRepo.UpdateStreaks(ctx, user.ID, currentStreak, longestStreak); err != nil {
		return nil, log.Err("failed to persist streaks", err, "userID", user.ID)
	}

	return &StreakResponse{
		CurrentStreak: currentStreak,
		LongestStreak: longestStreak,
	}, nil
}

// GetAnalytics aggregates the trailing period-day window of the user's logs.
func (c *LogsController) GetAnalytics(
	ctx context.Context,
	user *User,
	period int,
) (*Analytics, error) {
	log := logger.NewWithContext(ctx, "logsController").Function("GetAnalytics")

	if period <= 0 {
		return nil, log.ErrorWithType(ErrValidation, "period must be a positive integer")
	}

	since := utils.StartOfDay(time.Now(), c.location).AddDate(0, 0, -period)

	logs, err := c.logRepo.GetSince(ctx, user.ID, since)
	if err != nil {
		return nil, log.Err("failed to get analytics logs", err, "userID", user.ID)
	}

	return Aggregate(logs), nil
}

// resolveLinkedTopics fills the display name and category of each referenced
// topic. A reference to a missing topic is left unresolved, not an error.
func (c *LogsController) resolveLinkedTopics(ctx context.Context, logs []*DailyLog) error {
	idSet := make(map[uuid.UUID]struct{})
	for _, entry := range logs {
		for _, linked := range entry.LinkedTopics {
			if linked.TopicID != uuid.Nil {
				idSet[linked.TopicID] = struct{}{}
			}
		}
	}

	if len(idSet) == 0 {
		return nil
	}

	topicIDs := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		topicIDs = append(topicIDs, id)
	}

	topics, err := c.topicRepo.GetByIDs(ctx, topicIDs)
	if err != nil {
		return err
	}

	byID := make(map[uuid.UUID]*Topic, len(topics))
	for _, topic := range topics {
		byID[topic.ID] = topic
	}

	for _, entry := range logs {
		for i := range entry.LinkedTopics {
			if topic, ok := byID[entry.LinkedTopics[i].TopicID]; ok {
				entry.LinkedTopics[i].TopicName = topic.Name
				entry.LinkedTopics[i].TopicCategory = string(topic.Category)
			}
		}
	}

	return nil
}
