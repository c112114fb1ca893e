package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/models/request_models"
	"closetshare/internal/models/response_models"
	"closetshare/internal/repositories"
	"closetshare/pkg/utils"
)

type ItemServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, request request_models.CreateItemRequest, imageData string) (*db_models.Item, error)
	Get(ctx context.Context, itemID uuid.UUID) (*response_models.ItemDetail, error)
	List(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]response_models.ItemDetail, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]response_models.ItemDetail, error)
	SetAvailability(ctx context.Context, itemID, callerID uuid.UUID, available bool) (*db_models.Item, error)
}

type ItemService struct {
	itemRepo     repositories.ItemRepository
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository
	logger       *zap.Logger
}

func NewItemService(
	itemRepo repositories.ItemRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) ItemServiceInterface {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, request request_models.CreateItemRequest, imageData string) (*db_models.Item, error) {
	if request.PricePerDay <= 0 {
		return nil, utils.ErrInvalidPrice
	}

	category, err := s.categoryRepo.FindByID(ctx, request.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	item := &db_models.Item{
		Name:        request.Name,
		Description: request.Description,
		Size:        request.Size,
		OwnerID:     ownerID,
		CategoryID:  category.ID,
		PricePerDay: request.PricePerDay,
		ImageData:   imageData,
		IsAvailable: true,
	}
	if err := s.itemRepo.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item listed",
		zap.String("item_id", item.ID.String()),
		zap.String("owner_id", ownerID.String()))
	return item, nil
}

func (s *ItemService) Get(ctx context.Context, itemID uuid.UUID) (*response_models.ItemDetail, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	detail := response_models.ItemDetail{Item: *item}
	if err := s.attachOwnerAndCategory(ctx, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *ItemService) List(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]response_models.ItemDetail, error) {
	items, err := s.itemRepo.List(ctx, categoryID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, items)
}

func (s *ItemService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]response_models.ItemDetail, error) {
	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, items)
}

func (s *ItemService) SetAvailability(ctx context.Context, itemID, callerID uuid.UUID, available bool) (*db_models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}
	if item.OwnerID != callerID {
		return nil, utils.ErrNotItemOwner
	}

	if err := s.itemRepo.SetAvailability(ctx, itemID, available); err != nil {
		return nil, err
	}
	item.IsAvailable = available
	return item, nil
}

func (s *ItemService) decorate(ctx context.Context, items []db_models.Item) ([]response_models.ItemDetail, error) {
	details := make([]response_models.ItemDetail, 0, len(items))
	for i := range items {
		detail := response_models.ItemDetail{Item: items[i]}
		if err := s.attachOwnerAndCategory(ctx, &detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *ItemService) attachOwnerAndCategory(ctx context.Context, detail *response_models.ItemDetail) error {
	owner, err := s.userRepo.FindByID(ctx, detail.OwnerID)
	if err != nil {
		return err
	}
	if owner != nil {
		detail.Owner = userSummary(owner)
	}

	category, err := s.categoryRepo.FindByID(ctx, detail.CategoryID.String())
	if err != nil {
		return err
	}
	if category != nil {
		detail.Category = &response_models.CategorySummary{ID: category.ID, Name: category.Name}
	}
	return nil
}
