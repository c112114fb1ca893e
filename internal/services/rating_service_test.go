package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/services"
	"closetshare/pkg/cache"
	"closetshare/pkg/utils"
)

type ratingFixture struct {
	ownerID     uuid.UUID
	requesterID uuid.UUID
	item        *db_models.Item
	request     *db_models.RentalRequest
}

func completedRental() ratingFixture {
	ownerID := uuid.New()
	requesterID := uuid.New()
	item := availableItem(ownerID)
	return ratingFixture{
		ownerID:     ownerID,
		requesterID: requesterID,
		item:        item,
		request: &db_models.RentalRequest{
			BaseModel:           db_models.BaseModel{ID: uuid.New()},
			ItemID:              item.ID,
			RequesterID:         requesterID,
			Status:              db_models.RentalStatusCompleted,
			CompletedByLender:   true,
			CompletedByBorrower: true,
		},
	}
}

func (f ratingFixture) rentalRepo() *rentalRepoMock {
	return &rentalRepoMock{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*db_models.RentalRequest, error) {
			return f.request, nil
		},
	}
}

func (f ratingFixture) itemRepo() *itemRepoMock {
	return &itemRepoMock{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*db_models.Item, error) {
			return f.item, nil
		},
	}
}

func TestSubmitRating_FirstRatingScalesToFiveHundred(t *testing.T) {
	f := completedRental()
	store := cache.NewMemoryAggregateStore()
	ctx := context.Background()

	// A stale cached aggregate must be dropped once the rating lands.
	store.Set(ctx, f.requesterID, cache.Aggregate{AvgRating: 0, RatingCount: 0}, time.Minute)

	var submitted *db_models.Rating
	ratingRepo := &ratingRepoMock{
		submitAndRecomputeFn: func(_ context.Context, rating *db_models.Rating) (int, int, error) {
			submitted = rating
			avg, count := utils.ScaledAverage([]int{rating.Score})
			return avg, count, nil
		},
	}

	svc := services.NewRatingService(ratingRepo, f.rentalRepo(), f.itemRepo(), &userRepoMock{}, store, zap.NewNop())
	rating, err := svc.SubmitRating(ctx, f.ownerID, f.request.ID, f.requesterID, 5, "returned in perfect shape")
	require.NoError(t, err)
	require.NotNil(t, submitted)
	require.Equal(t, f.ownerID, rating.FromUserID)
	require.Equal(t, f.requesterID, rating.ToUserID)
	require.Equal(t, 5, rating.Score)

	_, ok := store.Get(ctx, f.requesterID)
	require.False(t, ok, "aggregate cache entry should be invalidated")
}

func TestSubmitRating_BorrowerRatesLender(t *testing.T) {
	f := completedRental()
	ratingRepo := &ratingRepoMock{
		submitAndRecomputeFn: func(_ context.Context, rating *db_models.Rating) (int, int, error) {
			return rating.Score * 100, 1, nil
		},
	}

	svc := services.NewRatingService(ratingRepo, f.rentalRepo(), f.itemRepo(), &userRepoMock{}, cache.NewMemoryAggregateStore(), zap.NewNop())
	rating, err := svc.SubmitRating(context.Background(), f.requesterID, f.request.ID, f.ownerID, 4, "")
	require.NoError(t, err)
	require.Equal(t, f.requesterID, rating.FromUserID)
	require.Equal(t, f.ownerID, rating.ToUserID)
}

func TestSubmitRating_Failures(t *testing.T) {
	f := completedRental()
	halfDone := *f.request
	halfDone.Status = db_models.RentalStatusApproved
	halfDone.CompletedByLender = false

	tests := []struct {
		name        string
		callerID    uuid.UUID
		ratedUserID uuid.UUID
		request     *db_models.RentalRequest
		score       int
		existing    *db_models.Rating
		wantErr     error
	}{
		{
			name:        "score below range",
			callerID:    f.ownerID,
			ratedUserID: f.requesterID,
			request:     f.request,
			score:       0,
			wantErr:     utils.ErrInvalidScore,
		},
		{
			name:        "score above range",
			callerID:    f.ownerID,
			ratedUserID: f.requesterID,
			request:     f.request,
			score:       6,
			wantErr:     utils.ErrInvalidScore,
		},
		{
			name:        "rental not found",
			callerID:    f.ownerID,
			ratedUserID: f.requesterID,
			request:     nil,
			score:       5,
			wantErr:     utils.ErrRequestNotFound,
		},
		{
			name:        "caller is a stranger",
			callerID:    uuid.New(),
			ratedUserID: f.requesterID,
			request:     f.request,
			score:       5,
			wantErr:     utils.ErrNotRentalParty,
		},
		{
			name:        "rated user is not the counterparty",
			callerID:    f.ownerID,
			ratedUserID: uuid.New(),
			request:     f.request,
			score:       5,
			wantErr:     utils.ErrWrongRatingTarget,
		},
		{
			name:        "only one party has completed",
			callerID:    f.ownerID,
			ratedUserID: f.requesterID,
			request:     &halfDone,
			score:       5,
			wantErr:     utils.ErrRentalNotCompleted,
		},
		{
			name:        "already rated this rental",
			callerID:    f.ownerID,
			ratedUserID: f.requesterID,
			request:     f.request,
			score:       5,
			existing:    &db_models.Rating{BaseModel: db_models.BaseModel{ID: uuid.New()}},
			wantErr:     utils.ErrAlreadyRated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rentalRepo := &rentalRepoMock{
				findByIDFn: func(_ context.Context, _ uuid.UUID) (*db_models.RentalRequest, error) {
					return tt.request, nil
				},
			}
			ratingRepo := &ratingRepoMock{
				findByRequestAndRaterFn: func(_ context.Context, _, _ uuid.UUID) (*db_models.Rating, error) {
					return tt.existing, nil
				},
				submitAndRecomputeFn: func(_ context.Context, _ *db_models.Rating) (int, int, error) {
					t.Fatal("recompute must not be reached")
					return 0, 0, nil
				},
			}

			svc := services.NewRatingService(ratingRepo, rentalRepo, f.itemRepo(), &userRepoMock{}, cache.NewMemoryAggregateStore(), zap.NewNop())
			_, err := svc.SubmitRating(context.Background(), tt.callerID, f.request.ID, tt.ratedUserID, tt.score, "")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetUserAggregate_ReadsUserAndCaches(t *testing.T) {
	userID := uuid.New()
	lookups := 0
	userRepo := &userRepoMock{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*db_models.User, error) {
			lookups++
			return &db_models.User{
				BaseModel:   db_models.BaseModel{ID: userID},
				AvgRating:   433,
				RatingCount: 3,
			}, nil
		},
	}

	svc := services.NewRatingService(&ratingRepoMock{}, &rentalRepoMock{}, &itemRepoMock{}, userRepo, cache.NewMemoryAggregateStore(), zap.NewNop())
	ctx := context.Background()

	agg, err := svc.GetUserAggregate(ctx, userID)
	require.NoError(t, err)
	require.InDelta(t, 4.33, agg.AvgRating, 0.001)
	require.Equal(t, 3, agg.RatingCount)

	again, err := svc.GetUserAggregate(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, agg.RatingCount, again.RatingCount)
	require.Equal(t, 1, lookups, "second read should come from the cache")
}

func TestGetUserAggregate_NoRatingsYet(t *testing.T) {
	userID := uuid.New()
	userRepo := &userRepoMock{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*db_models.User, error) {
			return &db_models.User{BaseModel: db_models.BaseModel{ID: userID}}, nil
		},
	}

	svc := services.NewRatingService(&ratingRepoMock{}, &rentalRepoMock{}, &itemRepoMock{}, userRepo, cache.NewMemoryAggregateStore(), zap.NewNop())
	agg, err := svc.GetUserAggregate(context.Background(), userID)
	require.NoError(t, err)
	require.Zero(t, agg.AvgRating)
	require.Zero(t, agg.RatingCount)
}

func TestGetUserAggregate_UnknownUser(t *testing.T) {
	svc := services.NewRatingService(&ratingRepoMock{}, &rentalRepoMock{}, &itemRepoMock{}, &userRepoMock{}, cache.NewMemoryAggregateStore(), zap.NewNop())
	_, err := svc.GetUserAggregate(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}
