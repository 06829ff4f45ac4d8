package topicsController

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

// TopicRequest is shared by create and update. Update treats nil fields as
// unchanged; create treats them as schema defaults.
type TopicRequest struct {
	Category       *string     `json:"category,omitempty"`
	Name           *string     `json:"name,omitempty"`
	Description    *string     `json:"description,omitempty"`
	Subtopics      *[]Subtopic `json:"subtopics,omitempty"`
	Status         *string     `json:"status,omitempty"`
	StartDate      *time.Time  `json:"startDate,omitempty"`
	EndDate        *time.Time  `json:"endDate,omitempty"`
	TimeSpent      *float64    `json:"timeSpent,omitempty"`
	AssociatedTags *[]string   `json:"associatedTags,omitempty"`
	Priority       *string     `json:"priority,omitempty"`
	Resources      *[]Resource `json:"resources,omitempty"`
	Progress       *int        `json:"progress,omitempty"`
}

type SubtopicRequest struct {
	Name      *string    `json:"name,omitempty"`
	Status    *string    `json:"status,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	TimeSpent *float64   `json:"timeSpent,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

type TopicsControllerInterface interface {
	ListTopics(ctx context.Context, user *User, filter repositories.TopicFilter) ([]*Topic, error)
	CreateTopic(ctx context.Context, user *User, request *TopicRequest) (*Topic, error)
	GetTopic(ctx context.Context, user *User, topicID uuid.UUID) (*Topic, error)
	UpdateTopic(ctx context.Context, user *User, topicID uuid.UUID, request *TopicRequest) (*Topic, error)
	DeleteTopic(ctx context.Context, user *User, topicID uuid.UUID) error
	UpdateSubtopic(ctx context.Context, user *User, topicID, subtopicID uuid.UUID, request *SubtopicRequest) (*Topic, error)
}

type TopicsController struct {
	topicRepo repositories.TopicRepository
	log       logger.Logger
}

func New(repos repositories.Repository) TopicsControllerInterface {
	return &TopicsController{
		topicRepo: repos.Topic,
		log:       logger.New("topicsController"),
	}
}

func (c *TopicsController) ListTopics(
	ctx context.Context,
	user *User,
	filter repositories.TopicFilter,
) ([]*Topic, error) {
	log := c.log.Function("ListTopics")

	if filter.Category != "" && !TopicCategory(filter.Category).Valid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid category filter")
	}
	if filter.Status != "" && !ProgressStatus(filter.Status).Valid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid status filter")
	}

	return c.topicRepo.GetAllForUser(ctx, user.ID, filter)
}

func (c *TopicsController) CreateTopic(
	ctx context.Context,
	user *User,
	request *TopicRequest,
) (*Topic, error) {
	log := c.log.Function("CreateTopic")

	if request.Name == nil || *request.Name == "" {
		return nil, log.ErrorWithType(ErrValidation, "name is required")
	}
	if request.Category == nil || !TopicCategory(*request.Category).Valid() {
		return nil, log.ErrorWithType(ErrValidation, "a valid category is required")
	}
	if err := validateTopicRequest(request); err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	topic := &Topic{UserID: user.ID}
	applyTopicFields(topic, request)
	assignSubtopicIDs(topic)

	if err := c.topicRepo.Create(ctx, topic); err != nil {
		return nil, log.Err("failed to create topic", err, "userID", user.ID)
	}

	return topic, nil
}

func (c *TopicsController) GetTopic(
	ctx context.Context,
	user *User,
	topicID uuid.UUID,
) (*Topic, error) {
	log := c.log.Function("GetTopic")

	topic, err := c.topicRepo.GetByID(ctx, user.ID, topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "topic not found", "topicID", topicID)
		}
		return nil, log.Err("failed to get topic", err, "topicID", topicID)
	}

	return topic, nil
}

func (c *TopicsController) UpdateTopic(
	ctx context.Context,
	user *User,
	topicID uuid.UUID,
	request *TopicRequest,
) (*Topic, error) {
	log := c.log.Function("UpdateTopic")

	if err := validateTopicRequest(request); err != nil {
		return nil, log.ErrorWithType(ErrValidation, err.Error())
	}

	topic, err := c.GetTopic(ctx, user, topicID)
	if err != nil {
		return nil, err
	}

	applyTopicFields(topic, request)
	assignSubtopicIDs(topic)

	if err := c.topicRepo.Update(ctx, topic); err != nil {
		return nil, log.Err("failed to update topic", err, "topicID", topicID)
	}

	return topic, nil
}

func (c *TopicsController) DeleteTopic(
	ctx context.Context,
	user *User,
	topicID uuid.UUID,
) error {
	log := c.log.Function("DeleteTopic")

	if err := c.topicRepo.Delete(ctx, user.ID, topicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return log.ErrorWithType(ErrNotFound, "topic not found", "topicID", topicID)
		}
		return log.Err("failed to delete topic", err, "topicID", topicID)
	}

	return nil
}

// UpdateSubtopic patches a single subtopic inside the topic's JSONB document
// and rolls the parent's aggregate fields up from its children.
func (c *TopicsController) UpdateSubtopic(
	ctx context.Context,
	user *User,
	topicID, subtopicID uuid.UUID,
	request *SubtopicRequest,
) (*Topic, error) {
	log := c.log.Function("UpdateSubtopic")

	if request.Status != nil && !ProgressStatus(*request.Status).Valid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid subtopic status")
	}
	if request.TimeSpent != nil && *request.TimeSpent < 0 {
		return nil, log.ErrorWithType(ErrValidation, "timeSpent cannot be negative")
	}

	topic, err := c.GetTopic(ctx, user, topicID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range topic.Subtopics {
		if topic.Subtopics[i].ID != subtopicID {
			continue
		}
		applySubtopicFields(&topic.Subtopics[i], request)
		found = true
		break
	}
	if !found {
		return nil, log.ErrorWithType(ErrNotFound, "subtopic not found", "subtopicID", subtopicID)
	}

	rollUpSubtopics(topic)

	if err := c.topicRepo.Update(ctx, topic); err != nil {
		return nil, log.Err("failed to update subtopic", err, "topicID", topicID)
	}

	return topic, nil
}

func validateTopicRequest(request *TopicRequest) error {
	if request.Category != nil && !TopicCategory(*request.Category).Valid() {
		return errors.New("invalid category")
	}
	if request.Status != nil && !ProgressStatus(*request.Status).Valid() {
		return errors.New("invalid status")
	}
	if request.Priority != nil && !Priority(*request.Priority).Valid() {
		return errors.New("invalid priority")
	}
	if request.TimeSpent != nil && *request.TimeSpent < 0 {
		return errors.New("timeSpent cannot be negative")
	}
	if request.Progress != nil && (*request.Progress < 0 || *request.Progress > 100) {
		return errors.New("progress must be between 0 and 100")
	}
	if request.Subtopics != nil {
		for _, subtopic := range *request.Subtopics {
			if subtopic.Name == "" {
				return errors.New("subtopic name is required")
			}
			if subtopic.Status != "" && !subtopic.Status.Valid() {
				return errors.New("invalid subtopic status")
			}
		}
	}
	if request.Resources != nil {
		for _, resource := range *request.Resources {
			if resource.URL == "" {
				return errors.New("resource url is required")
			}
			if resource.Type != "" && !resource.Type.Valid() {
				return errors.New("invalid resource type")
			}
		}
	}
	return nil
}

func applyTopicFields(topic *Topic, request *TopicRequest) {
	if request.Category != nil {
		topic.Category = TopicCategory(*request.Category)
	}
	if request.Name != nil {
		topic.Name = *request.Name
	}
	if request.Description != nil {
		topic.Description = *request.Description
	}
	if request.Subtopics != nil {
		topic.Subtopics = *request.Subtopics
	}
	if request.Status != nil {
		topic.Status = ProgressStatus(*request.Status)
	}
	if request.StartDate != nil {
		topic.StartDate = request.StartDate
	}
	if request.EndDate != nil {
		topic.EndDate = request.EndDate
	}
	if request.TimeSpent != nil {
		topic.TimeSpent = *request.TimeSpent
	}
	if request.AssociatedTags != nil {
		topic.AssociatedTags = *request.AssociatedTags
	}
	if request.Priority != nil {
		topic.Priority = Priority(*request.Priority)
	}
	if request.Resources != nil {
		topic.Resources = *request.Resources
	}
	if request.Progress != nil {
		topic.Progress = *request.Progress
	}
}

func applySubtopicFields(subtopic *Subtopic, request *SubtopicRequest) {
	if request.Name != nil {
		subtopic.Name = *request.Name
	}
	if request.Status != nil {
		subtopic.Status = ProgressStatus(*request.Status)
	}
	if request.StartDate != nil {
		subtopic.StartDate = request.StartDate
	}
	if request.EndDate != nil {
		subtopic.EndDate = request.EndDate
	}
	if request.TimeSpent != nil {
		subtopic.TimeSpent = *request.TimeSpent
	}
	if request.Notes != nil {
		subtopic.Notes = *request.Notes
	}
}

// assignSubtopicIDs gives each subtopic a stable identity on the way in so
// later subtopic updates can address it.
func assignSubtopicIDs(topic *Topic) {
	for i := range topic.Subtopics {
		if topic.Subtopics[i].ID == uuid.Nil {
			topic.Subtopics[i].ID = uuid.Must(uuid.NewV7())
		}
		if topic.Subtopics[i].Status == "" {
			topic.Subtopics[i].Status = StatusNotStarted
		}
	}
}

// rollUpSubtopics recomputes the parent's progress, time spent and status from
// its subtopics. A topic with no subtopics keeps its manually set values.
func rollUpSubtopics(topic *Topic) {
	if len(topic.Subtopics) == 0 {
		return
	}

	completed := 0
	timeSpent := 0.0
	started := false
	for _, subtopic := range topic.Subtopics {
		timeSpent += subtopic.TimeSpent
		switch subtopic.Status {
		case StatusCompleted:
			completed++
			started = true
		case StatusInProgress:
			started = true
		}
	}

	topic.TimeSpent = timeSpent
	topic.Progress = completed * 100 / len(topic.Subtopics)

	switch {
	case completed == len(topic.Subtopics):
		topic.Status = StatusCompleted
	case started:
		topic.Status = StatusInProgress
	default:
		topic.Status = StatusNotStarted
	}
}
