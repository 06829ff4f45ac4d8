package repositories

import (
	"context"
	"time"

	"studytrack/internal/database"
	"studytrack/internal/logger"
	. "studytrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	USER_CACHE_EXPIRY = 7 * 24 * time.Hour
	USER_CACHE_PREFIX = "user:"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	UpdateSettings(ctx context.Context, userID uuid.UUID, settings UserSettings) error
	IncrementTotalQuestions(ctx context.Context, userID uuid.UUID, delta int) error
	UpdateStreaks(ctx context.Context, userID uuid.UUID, currentStreak, longestStreak int) error
	GetReminderRecipients(ctx context.Context) ([]*User, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	log := r.log.Function("GetByID")

	var user User
	if found := r.getCacheByID(ctx, id, &user); found {
		return &user, nil
	}

	if err := r.db.SQLWithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get user by id", err, "id", id)
	}

	if err := r.addUserToCache(ctx, &user); err != nil {
		log.Warn("failed to add user to cache", "userID", id, "error", err)
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	log := r.log.Function("GetByEmail")

	var user User
	if err := r.db.SQLWithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, log.Err("failed to get user by email", err, "email", email)
	}

	if err := r.addUserToCache(ctx, &user); err != nil {
		log.Warn("failed to add user to cache", "userID", user.ID, "error", err)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *User) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(user).Error; err != nil {
		return log.Err("failed to create user", err, "email", user.Email)
	}

	if err := r.addUserToCache(ctx, user); err != nil {
		log.Warn("failed to add user to cache", "userID", user.ID, "error", err)
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *User) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(user).Error; err != nil {
		return log.Err("failed to update user", err, "userID", user.ID)
	}

	r.clearUserCache(ctx, user.ID)

	return nil
}

func (r *userRepository) UpdateSettings(
	ctx context.Context,
	userID uuid.UUID,
	settings UserSettings,
) error {
	log := r.log.Function("UpdateSettings")

	err := r.db.SQLWithContext(ctx).Model(&User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"settings_daily_reminder": settings.DailyReminder,
			"settings_reminder_time":  settings.ReminderTime,
		}).Error
	if err != nil {
		return log.Err("failed to update user settings", err, "userID", userID)
	}

	r.clearUserCache(ctx, userID)

	return nil
}

// IncrementTotalQuestions applies a delta to the denormalized question counter
// as a single atomic UPDATE, never a read-modify-write in the caller.
func (r *userRepository) IncrementTotalQuestions(
	ctx context.Context,
	userID uuid.UUID,
	delta int,
) error {
	log := r.log.Function("IncrementTotalQuestions")

	err := r.db.SQLWithContext(ctx).Model(&User{}).
		Where("id = ?", userID).
		UpdateColumn("stats_total_questions", gorm.Expr("stats_total_questions + ?", delta)).
		Error
	if err != nil {
		return log.Err("failed to increment total questions", err, "userID", userID, "delta", delta)
	}

	r.clearUserCache(ctx, userID)

	return nil
}

// UpdateStreaks overwrites the cached streak values with a freshly computed
// pair. This is a full replacement, not an increment.
func (r *userRepository) UpdateStreaks(
	ctx context.Context,
	userID uuid.UUID,
	currentStreak, longestStreak int,
) error {
	log := r.log.Function("UpdateStreaks")

	err := r.db.SQLWithContext(ctx).Model(&User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"stats_current_streak": currentStreak,
			"stats_longest_streak": longestStreak,
		}).Error
	if err != nil {
		return log.Err("failed to update streaks", err, "userID", userID)
	}

	r.clearUserCache(ctx, userID)

	return nil
}

func (r *userRepository) GetReminderRecipients(ctx context.Context) ([]*User, error) {
	log := r.log.Function("GetReminderRecipients")

	var users []*User
	err := r.db.SQLWithContext(ctx).
		Where("settings_daily_reminder = ?", true).
		Find(&users).Error
	if err != nil {
		return nil, log.Err("failed to get reminder recipients", err)
	}

	return users, nil
}

func (r *userRepository) getCacheByID(ctx context.Context, userID uuid.UUID, user *User) bool {
	cacheKey := USER_CACHE_PREFIX + userID.String()
	found, err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).WithContext(ctx).Get(user)
	if err != nil {
		r.log.Function("getCacheByID").
			Warn("failed to get user from cache", "userID", userID, "error", err)
		return false
	}

	return found
}

func (r *userRepository) addUserToCache(ctx context.Context, user *User) error {
	cacheKey := USER_CACHE_PREFIX + user.ID.String()
	return database.NewCacheBuilder(r.db.Cache.User, cacheKey).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}

func (r *userRepository) clearUserCache(ctx context.Context, userID uuid.UUID) {
	cacheKey := USER_CACHE_PREFIX + userID.String()
	if err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).WithContext(ctx).Delete(); err != nil {
		r.log.Function("clearUserCache").
			Warn("failed to clear user cache", "userID", userID, "error", err)
	}
}
