package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/models/response_models"
	"closetshare/internal/repositories"
	"closetshare/pkg/utils"
)

type MessageServiceInterface interface {
	Send(ctx context.Context, fromUserID, toUserID uuid.UUID, itemID *uuid.UUID, content string) (*db_models.Message, error)
	Thread(ctx context.Context, userID, otherUserID uuid.UUID, itemID *uuid.UUID) ([]db_models.Message, error)
	Threads(ctx context.Context, userID uuid.UUID) ([]response_models.ThreadPreview, error)
	MarkThreadRead(ctx context.Context, userID, fromUserID, itemID uuid.UUID) error
}

type MessageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	itemRepo    repositories.ItemRepository
	logger      *zap.Logger
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	logger *zap.Logger,
) MessageServiceInterface {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		logger:      logger,
	}
}

func (s *MessageService) Send(ctx context.Context, fromUserID, toUserID uuid.UUID, itemID *uuid.UUID, content string) (*db_models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.ErrEmptyMessage
	}

	recipient, err := s.userRepo.FindByID(ctx, toUserID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, utils.ErrUserNotFound
	}

	if itemID != nil {
		item, err := s.itemRepo.FindByID(ctx, *itemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, utils.ErrItemNotFound
		}
	}

	message := &db_models.Message{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		ItemID:     itemID,
		Content:    content,
	}
	if err := s.messageRepo.Insert(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *MessageService) Thread(ctx context.Context, userID, otherUserID uuid.UUID, itemID *uuid.UUID) ([]db_models.Message, error) {
	return s.messageRepo.Conversation(ctx, userID, otherUserID, itemID)
}

// Threads collapses the user's messages into one preview per
// (counterparty, item) pair, keeping the newest message of each.
func (s *MessageService) Threads(ctx context.Context, userID uuid.UUID) ([]response_models.ThreadPreview, error) {
	messages, err := s.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type threadKey struct {
		other uuid.UUID
		item  uuid.UUID
	}
	seen := make(map[threadKey]bool)
	previews := make([]response_models.ThreadPreview, 0)

	// messages arrive newest first, so the first hit per key wins.
	for i := range messages {
		msg := messages[i]
		if msg.ItemID == nil {
			continue
		}
		other := msg.FromUserID
		if other == userID {
			other = msg.ToUserID
		}
		key := threadKey{other: other, item: *msg.ItemID}
		if seen[key] {
			continue
		}
		seen[key] = true

		preview := response_models.ThreadPreview{
			UserID:      other,
			ItemID:      msg.ItemID,
			LastMessage: msg.Content,
			Timestamp:   msg.CreatedAt,
		}
		otherUser, err := s.userRepo.FindByID(ctx, other)
		if err != nil {
			return nil, err
		}
		if otherUser != nil {
			preview.UserName = otherUser.FullName
			if preview.UserName == "" {
				preview.UserName = otherUser.Username
			}
		}
		item, err := s.itemRepo.FindByID(ctx, *msg.ItemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			preview.ItemName = item.Name
		}
		previews = append(previews, preview)
	}
	return previews, nil
}

func (s *MessageService) MarkThreadRead(ctx context.Context, userID, fromUserID, itemID uuid.UUID) error {
	return s.messageRepo.MarkThreadRead(ctx, userID, fromUserID, itemID)
}
