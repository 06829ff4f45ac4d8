package repositories

import (
	"context"
	"time"

	"studytrack/internal/database"
	"studytrack/internal/logger"
	. "studytrack/internal/models"

	"github.com/google/uuid"
)

const (
	STREAK_LOGS_CACHE_PREFIX = "streak_logs"
	STREAK_LOGS_CACHE_EXPIRY = time.Hour

	// Older history is ignored for streak purposes, an explicit scope limit.
	STREAK_HISTORY_LIMIT = 365
)

// DateRange bounds a log query; both ends are inclusive and expected to be
// normalized to start of day.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

type DailyLogRepository interface {
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyLog, error)
	Create(ctx context.Context, log *DailyLog) error
	Update(ctx context.Context, log *DailyLog) error
	GetRange(ctx context.Context, userID uuid.UUID, dateRange DateRange, limit int) ([]*DailyLog, error)
	GetStreakLogs(ctx context.Context, userID uuid.UUID) ([]*DailyLog, error)
	GetSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*DailyLog, error)
}

type dailyLogRepository struct {
	db  database.DB
	log logger.Logger
}

func NewDailyLogRepository(db database.DB) DailyLogRepository {
	return &dailyLogRepository{
		db:  db,
		log: logger.New("dailyLogRepository"),
	}
}

// GetByUserAndDate returns the record for the given normalized day, or
// gorm.ErrRecordNotFound when the user has no log for it.
func (r *dailyLogRepository) GetByUserAndDate(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
) (*DailyLog, error) {
	var dailyLog DailyLog
	err := r.db.SQLWithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&dailyLog).Error
	if err != nil {
		return nil, err
	}

	return &dailyLog, nil
}

// Create inserts a first-time submission for a (user, day). The composite
// unique index is the sole concurrency guard; a lost creation race surfaces as
// gorm.ErrDuplicatedKey and is the caller's to retry as an update.
func (r *dailyLogRepository) Create(ctx context.Context, dailyLog *DailyLog) error {
	if err := r.db.SQLWithContext(ctx).Create(dailyLog).Error; err != nil {
		return err
	}

	r.clearStreakLogsCache(ctx, dailyLog.UserID)

	return nil
}

func (r *dailyLogRepository) Update(ctx context.Context, dailyLog *DailyLog) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(dailyLog).Error; err != nil {
		return log.Err("failed to update daily log", err, "logID", dailyLog.ID, "userID", dailyLog.UserID)
	}

	r.clearStreakLogsCache(ctx, dailyLog.UserID)

	return nil
}

func (r *dailyLogRepository) GetRange(
	ctx context.Context,
	userID uuid.UUID,
	dateRange DateRange,
	limit int,
) ([]*DailyLog, error) {
	log := r.log.Function("GetRange")

	query := r.db.SQLWithContext(ctx).Where("user_id = ?", userID)
	if dateRange.Start != nil {
		query = query.Where("date >= ?", *dateRange.Start)
	}
	if dateRange.End != nil {
		query = query.Where("date <= ?", *dateRange.End)
	}

	var logs []*DailyLog
	err := query.Order("date DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, log.Err("failed to get daily logs", err, "userID", userID)
	}

	return logs, nil
}

// GetStreakLogs returns the streak-relevant slice of history: positive
// questionsSolved, newest first, bounded to the most recent 365 entries.
func (r *dailyLogRepository) GetStreakLogs(
	ctx context.Context,
	userID uuid.UUID,
) ([]*DailyLog, error) {
	log := r.log.Function("GetStreakLogs")

	var cached []*DailyLog
	found, err := database.NewCacheBuilder(r.db.Cache.User, userID).
		WithContext(ctx).
		WithHash(STREAK_LOGS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get streak logs from cache", "userID", userID, "error", err)
	}

	if found {
		return cached, nil
	}

	var logs []*DailyLog
	err = r.db.SQLWithContext(ctx).
		Where("user_id = ? AND questions_solved > 0", userID).
		Order("date DESC").
		Limit(STREAK_HISTORY_LIMIT).
		Find(&logs).Error
	if err != nil {
		return nil, log.Err("failed to get streak logs", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.db.Cache.User, userID).
		WithContext(ctx).
		WithHash(STREAK_LOGS_CACHE_PREFIX).
		WithStruct(logs).
		WithTTL(STREAK_LOGS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set streak logs in cache", "userID", userID, "error", err)
	}

	return logs, nil
}

// GetSince returns logs with date >= since, oldest first, with no upper bound.
func (r *dailyLogRepository) GetSince(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]*DailyLog, error) {
	log := r.log.Function("GetSince")

	var logs []*DailyLog
	err := r.db.SQLWithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, log.Err("failed to get daily logs since date", err, "userID", userID, "since", since)
	}

	return logs, nil
}

func (r *dailyLogRepository) clearStreakLogsCache(ctx context.Context, userID uuid.UUID) {
	err := database.NewCacheBuilder(r.db.Cache.User, userID).
		WithContext(ctx).
		WithHash(STREAK_LOGS_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Function("clearStreakLogsCache").
			Warn("failed to clear streak logs cache", "userID", userID, "error", err)
	}
}
