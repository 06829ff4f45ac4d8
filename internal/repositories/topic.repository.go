package repositories

import (
	"context"

	"studytrack/internal/database"
	"studytrack/internal/logger"
	. "studytrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicFilter narrows the owner-scoped topic listing. Search matches name,
// description and tags, case-insensitively.
type TopicFilter struct {
	Category string
	Status   string
	Search   string
}

type TopicRepository interface {
	GetAllForUser(ctx context.Context, userID uuid.UUID, filter TopicFilter) ([]*Topic, error)
	GetByID(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*Topic, error)
	GetByIDs(ctx context.Context, topicIDs []uuid.UUID) ([]*Topic, error)
	Create(ctx context.Context, topic *Topic) error
	Update(ctx context.Context, topic *Topic) error
	Delete(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) error
}

type topicRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTopicRepository(db database.DB) TopicRepository {
	return &topicRepository{
		db:  db,
		log: logger.New("topicRepository"),
	}
}

func (r *topicRepository) GetAllForUser(
	ctx context.Context,
	userID uuid.UUID,
	filter TopicFilter,
) ([]*Topic, error) {
	log := r.log.Function("GetAllForUser")

	query := r.db.SQLWithContext(ctx).Where("user_id = ?", userID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR associated_tags::text ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var topics []*Topic
	if err := query.Order("created_at DESC").Find(&topics).Error; err != nil {
		return nil, log.Err("failed to get topics", err, "userID", userID)
	}

	return topics, nil
}

func (r *topicRepository) GetByID(
	ctx context.Context,
	userID uuid.UUID,
	topicID uuid.UUID,
) (*Topic, error) {
	var topic Topic
	err := r.db.SQLWithContext(ctx).
		Where("id = ? AND user_id = ?", topicID, userID).
		First(&topic).Error
	if err != nil {
		return nil, err
	}

	return &topic, nil
}

// GetByIDs is the read-only lookup join used to enrich linked topics on log
// reads. It deliberately performs no ownership check.
func (r *topicRepository) GetByIDs(ctx context.Context, topicIDs []uuid.UUID) ([]*Topic, error) {
	log := r.log.Function("GetByIDs")

	if len(topicIDs) == 0 {
		return nil, nil
	}

	var topics []*Topic
	if err := r.db.SQLWithContext(ctx).Where("id IN ?", topicIDs).Find(&topics).Error; err != nil {
		return nil, log.Err("failed to get topics by ids", err, "count", len(topicIDs))
	}

	return topics, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *Topic) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(topic).Error; err != nil {
		return log.Err("failed to create topic", err, "userID", topic.UserID, "name", topic.Name)
	}

	return nil
}

func (r *topicRepository) Update(ctx context.Context, topic *Topic) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(topic).Error; err != nil {
		return log.Err("failed to update topic", err, "topicID", topic.ID)
	}

	return nil
}

func (r *topicRepository) Delete(
	ctx context.Context,
	userID uuid.UUID,
	topicID uuid.UUID,
) error {
	result := r.db.SQLWithContext(ctx).
		Where("id = ? AND user_id = ?", topicID, userID).
		Delete(&Topic{})
	if result.Error != nil {
		return r.log.Function("Delete").
			Err("failed to delete topic", result.Error, "topicID", topicID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
