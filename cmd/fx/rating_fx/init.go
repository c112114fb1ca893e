package rating_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/api/controllers"
	"closetshare/internal/repositories"
	"closetshare/internal/services"
	"closetshare/pkg/cache"
)

var Module = fx.Provide(
	provideRatingRepo, provideRatingService, provideRatingController,
)

func provideRatingRepo(db *gorm.DB) repositories.RatingRepository {
	return repositories.NewRatingRepository(db)
}

func provideRatingService(
	ratingRepo repositories.RatingRepository,
	rentalRepo repositories.RentalRepository,
	itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository,
	aggregates cache.AggregateStore,
	logger *zap.Logger,
) services.RatingServiceInterface {
	return services.NewRatingService(ratingRepo, rentalRepo, itemRepo, userRepo, aggregates, logger)
}

func provideRatingController(ratingService services.RatingServiceInterface) *controllers.RatingController {
	return controllers.NewRatingController(ratingService)
}
