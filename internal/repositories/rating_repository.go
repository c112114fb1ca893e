package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"closetshare/internal/models/db_models"
	"closetshare/pkg/utils"
)

type RatingRepository interface {
	FindByRequestAndRater(ctx context.Context, requestID, raterID uuid.UUID) (*db_models.Rating, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Rating, error)
	// SubmitAndRecompute inserts the rating and refreshes the rated user's
	// aggregate in one transaction. Returns the new scaled average and count.
	SubmitAndRecompute(ctx context.Context, rating *db_models.Rating) (avg int, count int, err error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) FindByRequestAndRater(ctx context.Context, requestID, raterID uuid.UUID) (*db_models.Rating, error) {
	var rating db_models.Rating
	err := r.db.WithContext(ctx).
		Where("rental_request_id = ? AND from_user_id = ?", requestID, raterID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Rating, error) {
	var ratings []db_models.Rating
	err := r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) SubmitAndRecompute(ctx context.Context, rating *db_models.Rating) (int, int, error) {
	var avg, count int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		var scores []int
		if err := tx.Model(&db_models.Rating{}).
			Where("to_user_id = ?", rating.ToUserID).
			Pluck("score", &scores).Error; err != nil {
			return err
		}

		avg, count = utils.ScaledAverage(scores)
		return tx.Model(&db_models.User{}).
			Where("id = ?", rating.ToUserID).
			Updates(map[string]interface{}{
				"avg_rating":   avg,
				"rating_count": count,
			}).Error
	})
	if err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
