package repositories

import (
	"context"

	"studytrack/internal/database"
	"studytrack/internal/logger"
	. "studytrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepository interface {
	GetAllForUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	GetByID(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (*Goal, error)
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error
}

type goalRepository struct {
	db  database.DB
	log logger.Logger
}

func NewGoalRepository(db database.DB) GoalRepository {
	return &goalRepository{
		db:  db,
		log: logger.New("goalRepository"),
	}
}

func (r *goalRepository) GetAllForUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	log := r.log.Function("GetAllForUser")

	var goals []*Goal
	err := r.db.SQLWithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, log.Err("failed to get goals", err, "userID", userID)
	}

	return goals, nil
}

func (r *goalRepository) GetByID(
	ctx context.Context,
	userID uuid.UUID,
	goalID uuid.UUID,
) (*Goal, error) {
	var goal Goal
	err := r.db.SQLWithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *Goal) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(goal).Error; err != nil {
		return log.Err("failed to create goal", err, "userID", goal.UserID)
	}

	return nil
}

func (r *goalRepository) Update(ctx context.Context, goal *Goal) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(goal).Error; err != nil {
		return log.Err("failed to update goal", err, "goalID", goal.ID)
	}

	return nil
}

func (r *goalRepository) Delete(
	ctx context.Context,
	userID uuid.UUID,
	goalID uuid.UUID,
) error {
	result := r.db.SQLWithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&Goal{})
	if result.Error != nil {
		return r.log.Function("Delete").
			Err("failed to delete goal", result.Error, "goalID", goalID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
