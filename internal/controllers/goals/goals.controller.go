package goalsController

import (
	"context"
	"errors"
	"time"

	"studytrack/internal/logger"
	. "studytrack/internal/models"
	"studytrack/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type GoalRequest struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *string      `json:"category,omitempty"`
	TargetDate  *time.Time   `json:"targetDate,omitempty"`
	Progress    *int         `json:"progress,omitempty"`
	Status      *string      `json:"status,omitempty"`
	Milestones  *[]Milestone `json:"milestones,omitempty"`
}

type GoalsControllerInterface interface {
	ListGoals(ctx context.Context, user *User) ([]*Goal, error)
	CreateGoal(ctx context.Context, user *User, request *GoalRequest) (*Goal, error)
	GetGoal(ctx context.Context, user *User, goalID uuid.UUID) (*Goal, error)
	UpdateGoal(ctx context.Context, user *User, goalID uuid.UUID, request *GoalRequest) (*Goal, error)
	DeleteGoal(ctx context.Context, user *User, goalID uuid.UUID) error
}

type GoalsController struct {
	goalRepo repositories.GoalRepository
	log      logger.Logger
}

func New(repos repositories.Repository) GoalsControllerInterface {
	return &GoalsController{
		goalRepo: repos.Goal,
		log:      logger.New("goalsController"),
	}
}

func (c *GoalsController) ListGoals(ctx context.Context, user *User) ([]*Goal, error) {
	return c.goalRepo.GetAllForUser(ctx, user.ID)
}

func (c *GoalsController) CreateGoal(
	ctx context.Context,
	user *User,
	request *GoalRequest,
) (*Goal, error) {
	log := c.log.Function("CreateGoal")

	if request.Title == nil || *request.Title == "" {
		return nil, log.ErrorWithType(ErrValidation, "title is required")
	}
	if request.TargetDate == nil || request.TargetDate.IsZero() {
		return nil, log.ErrorWithType(ErrValidation, "targetDate is required")
	}
	if err := validateGoalRequest(request); err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	goal := &Goal{UserID: user.ID}
	applyGoalFields(goal, request)

	if err := c.goalRepo.Create(ctx, goal); err != nil {
		return nil, log.Err("failed to create goal", err, "userID", user.ID)
	}

	return goal, nil
}

func (c *GoalsController) GetGoal(
	ctx context.Context,
	user *User,
	goalID uuid.UUID,
) (*Goal, error) {
	log := c.log.Function("GetGoal")

	goal, err := c.goalRepo.GetByID(ctx, user.ID, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "goal not found", "goalID", goalID)
		}
		return nil, log.Err("failed to get goal", err, "goalID", goalID)
	}

	return goal, nil
}

func (c *GoalsController) UpdateGoal(
	ctx context.Context,
	user *User,
	goalID uuid.UUID,
	request *GoalRequest,
) (*Goal, error) {
	log := c.log.Function("UpdateGoal")

	if err := validateGoalRequest(request); err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	goal, err := c.GetGoal(ctx, user, goalID)
	if err != nil {
		return nil, err
	}

	applyGoalFields(goal, request)

	if err := c.goalRepo.Update(ctx, goal); err != nil {
		return nil, log.Err("failed to update goal", err, "goalID", goalID)
	}

	return goal, nil
}

func (c *GoalsController) DeleteGoal(
	ctx context.Context,
	user *User,
	goalID uuid.UUID,
) error {
	log := c.log.Function("DeleteGoal")

	if err := c.goalRepo.Delete(ctx, user.ID, goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "goal not found", "goalID", goalID)
		}
		return log.Err("failed to delete goal", err, "goalID", goalID)
	}

	return nil
}

func validateGoalRequest(request *GoalRequest) error {
	if request.Status != nil && !GoalStatus(*request.Status).Valid() {
		return errors.New("invalid status")
	}
	if request.Progress != nil && (*request.Progress < 0 || *request.Progress > 100) {
		return errors.New("progress must be between 0 and 100")
	}
	if request.Milestones != nil {
		for _, milestone := range *request.Milestones {
			if milestone.Title == "" {
				return errors.New("milestone title is required")
			}
		}
	}
	return nil
}

func applyGoalFields(goal *Goal, request *GoalRequest) {
	if request.Title != nil {
		goal.Title = *request.Title
	}
	if request.Description != nil {
		goal.Description = *request.Description
	}
	if request.Category != nil {
		goal.Category = *request.Category
	}
	if request.TargetDate != nil {
		goal.TargetDate = *request.TargetDate
	}
	if request.Progress != nil {
		goal.Progress = *request.Progress
	}
	if request.Status != nil {
		goal.Status = GoalStatus(*request.Status)
	}
	if request.Milestones != nil {
		goal.Milestones = *request.Milestones
	}
}
