package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/models/response_models"
	"closetshare/internal/repositories"
	"closetshare/pkg/cache"
	"closetshare/pkg/utils"
)

const aggregateCacheTTL = 5 * time.Minute

// RatingServiceInterface records one rating per completed rental per rater
// and keeps the rated user's trust aggregate current.
type RatingServiceInterface interface {
	SubmitRating(ctx context.Context, callerID, rentalRequestID, ratedUserID uuid.UUID, score int, comment string) (*db_models.Rating, error)
	GetUserAggregate(ctx context.Context, userID uuid.UUID) (*response_models.RatingAggregate, error)
	ListUserRatings(ctx context.Context, userID uuid.UUID) ([]db_models.Rating, error)
}

type RatingService struct {
	ratingRepo repositories.RatingRepository
	rentalRepo repositories.RentalRepository
	itemRepo   repositories.ItemRepository
	userRepo   repositories.UserRepository
	aggregates cache.AggregateStore
	logger     *zap.Logger
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	rentalRepo repositories.RentalRepository,
	itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository,
	aggregates cache.AggregateStore,
	logger *zap.Logger,
) RatingServiceInterface {
	return &RatingService{
		ratingRepo: ratingRepo,
		rentalRepo: rentalRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		aggregates: aggregates,
		logger:     logger,
	}
}

func (s *RatingService) SubmitRating(ctx context.Context, callerID, rentalRequestID, ratedUserID uuid.UUID, score int, comment string) (*db_models.Rating, error) {
	if score < 1 || score > 5 {
		return nil, utils.ErrInvalidScore
	}

	request, err := s.rentalRepo.FindByID(ctx, rentalRequestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, utils.ErrRequestNotFound
	}

	item, err := s.itemRepo.FindByID(ctx, request.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	// The two parties of the rental are the item owner and the requester;
	// each may rate only the other.
	var counterparty uuid.UUID
	switch callerID {
	case item.OwnerID:
		counterparty = request.RequesterID
	case request.RequesterID:
		counterparty = item.OwnerID
	default:
		return nil, utils.ErrNotRentalParty
	}
	if ratedUserID != counterparty {
		return nil, utils.ErrWrongRatingTarget
	}

	if !request.EffectivelyCompleted() {
		return nil, utils.ErrRentalNotCompleted
	}

	existing, err := s.ratingRepo.FindByRequestAndRater(ctx, rentalRequestID, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrAlreadyRated
	}

	rating := &db_models.Rating{
		FromUserID:      callerID,
		ToUserID:        ratedUserID,
		RentalRequestID: rentalRequestID,
		Score:           score,
		Comment:         comment,
	}
	avg, count, err := s.ratingRepo.SubmitAndRecompute(ctx, rating)
	if err != nil {
		return nil, err
	}

	s.aggregates.Invalidate(ctx, ratedUserID)
	s.logger.Info("rating submitted",
		zap.String("rental_request_id", rentalRequestID.String()),
		zap.String("rated_user_id", ratedUserID.String()),
		zap.Int("score", score),
		zap.Int("avg_rating", avg),
		zap.Int("rating_count", count))
	return rating, nil
}

func (s *RatingService) GetUserAggregate(ctx context.Context, userID uuid.UUID) (*response_models.RatingAggregate, error) {
	if cached, ok := s.aggregates.Get(ctx, userID); ok {
		return &response_models.RatingAggregate{
			AvgRating:   cached.AvgRating,
			RatingCount: cached.RatingCount,
		}, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	agg := response_models.RatingAggregate{
		AvgRating:   utils.UnscaleRating(user.AvgRating),
		RatingCount: user.RatingCount,
	}
	s.aggregates.Set(ctx, userID, cache.Aggregate{
		AvgRating:   agg.AvgRating,
		RatingCount: agg.RatingCount,
	}, aggregateCacheTTL)
	return &agg, nil
}

func (s *RatingService) ListUserRatings(ctx context.Context, userID uuid.UUID) ([]db_models.Rating, error) {
	return s.ratingRepo.ListForUser(ctx, userID)
}
