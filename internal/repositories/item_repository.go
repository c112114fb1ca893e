package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"closetshare/internal/models/db_models"
)

type ItemRepository interface {
	Insert(ctx context.Context, item *db_models.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Item, error)
	List(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]db_models.Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Item, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Insert(ctx context.Context, item *db_models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Item, error) {
	var item db_models.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]db_models.Item, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Item{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var items []db_models.Item
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Item, error) {
	var items []db_models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Item{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *itemRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Item{}).
		Where("id = ?", id).
		Update("is_available", available).Error
}
