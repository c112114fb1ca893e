package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/models/request_models"
	"closetshare/internal/repositories"
	"closetshare/pkg/utils"
)

type CategoryServiceInterface interface {
	List(ctx context.Context) ([]db_models.Category, error)
	Create(ctx context.Context, request request_models.CreateCategoryRequest) (*db_models.Category, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]db_models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, request request_models.CreateCategoryRequest) (*db_models.Category, error) {
	existing, err := s.categoryRepo.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrCategoryTaken
	}

	category := &db_models.Category{Name: request.Name, Icon: request.Icon}
	if category.Icon == "" {
		category.Icon = "tshirt"
	}
	if request.ParentID != "" {
		parentID, err := uuid.Parse(request.ParentID)
		if err != nil {
			return nil, utils.ErrCategoryNotFound
		}
		parent, err := s.categoryRepo.FindByID(ctx, parentID.String())
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, utils.ErrCategoryNotFound
		}
		category.ParentID = &parent.ID
	}

	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info("category created", zap.String("name", category.Name))
	return category, nil
}
