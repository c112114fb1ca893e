package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"closetshare/internal/models/db_models"
)

type VerificationRepository interface {
	Insert(ctx context.Context, request *db_models.VerificationRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.VerificationRequest, error)
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*db_models.VerificationRequest, error)
	ListPending(ctx context.Context) ([]db_models.VerificationRequest, error)
	Review(ctx context.Context, id uuid.UUID, status string, reviewedBy uuid.UUID, reviewedAt int64, notes string) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Insert(ctx context.Context, request *db_models.VerificationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *verificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.VerificationRequest, error) {
	var request db_models.VerificationRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *verificationRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*db_models.VerificationRequest, error) {
	var request db_models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *verificationRepository) ListPending(ctx context.Context) ([]db_models.VerificationRequest, error) {
	var requests []db_models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.VerificationStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *verificationRepository) Review(ctx context.Context, id uuid.UUID, status string, reviewedBy uuid.UUID, reviewedAt int64, notes string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.VerificationRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewedBy,
			"reviewed_at": reviewedAt,
			"notes":       notes,
		}).Error
}
