package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"closetshare/internal/models/db_models"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *db_models.Message) error
	Conversation(ctx context.Context, user1ID, user2ID uuid.UUID, itemID *uuid.UUID) ([]db_models.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Message, error)
	MarkThreadRead(ctx context.Context, toUserID, fromUserID uuid.UUID, itemID uuid.UUID) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Conversation(ctx context.Context, user1ID, user2ID uuid.UUID, itemID *uuid.UUID) ([]db_models.Message, error) {
	query := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			user1ID, user2ID, user2ID, user1ID)
	if itemID != nil {
		query = query.Where("item_id = ?", *itemID)
	}

	var messages []db_models.Message
	err := query.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkThreadRead(ctx context.Context, toUserID, fromUserID uuid.UUID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Message{}).
		Where("to_user_id = ? AND from_user_id = ? AND item_id = ? AND is_read = ?",
			toUserID, fromUserID, itemID, false).
		Update("is_read", true).Error
}
