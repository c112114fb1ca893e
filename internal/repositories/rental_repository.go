package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"closetshare/internal/models/db_models"
)

type RentalRepository interface {
	Insert(ctx context.Context, request *db_models.RentalRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.RentalRequest, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]db_models.RentalRequest, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]db_models.RentalRequest, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.RentalRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	MarkCompleted(ctx context.Context, id uuid.UUID, byLender bool) (*db_models.RentalRequest, error)
}

type rentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Insert(ctx context.Context, request *db_models.RentalRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.RentalRequest, error) {
	var request db_models.RentalRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *rentalRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]db_models.RentalRequest, error) {
	var requests []db_models.RentalRequest
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *rentalRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]db_models.RentalRequest, error) {
	var requests []db_models.RentalRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.RentalRequest, error) {
	var requests []db_models.RentalRequest
	err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = rental_requests.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("rental_requests.created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.RentalRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// MarkCompleted sets the completion flag for one party and, once both flags
// are true, transitions the request to completed. The flag write is a
// single-column UPDATE so the two parties cannot clobber each other, and the
// re-read locks the row so only one of two concurrent callers performs the
// status transition.
func (r *rentalRepository) MarkCompleted(ctx context.Context, id uuid.UUID, byLender bool) (*db_models.RentalRequest, error) {
	column := "completed_by_borrower"
	if byLender {
		column = "completed_by_lender"
	}

	var request db_models.RentalRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.RentalRequest{}).
			Where("id = ?", id).
			Update(column, true).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", id).Error; err != nil {
			return err
		}

		if request.EffectivelyCompleted() && request.Status != db_models.RentalStatusCompleted {
			if err := tx.Model(&db_models.RentalRequest{}).
				Where("id = ?", id).
				Update("status", db_models.RentalStatusCompleted).Error; err != nil {
				return err
			}
			request.Status = db_models.RentalStatusCompleted
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}
