package rental_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/api/controllers"
	"closetshare/internal/repositories"
	"closetshare/internal/services"
)

var Module = fx.Provide(
	provideRentalRepo, provideRentalService, provideRentalController,
)

func provideRentalRepo(db *gorm.DB) repositories.RentalRepository {
	return repositories.NewRentalRepository(db)
}

func provideRentalService(rentalRepo repositories.RentalRepository, itemRepo repositories.ItemRepository, userRepo repositories.UserRepository, logger *zap.Logger) services.RentalServiceInterface {
	return services.NewRentalService(rentalRepo, itemRepo, userRepo, logger)
}

func provideRentalController(rentalService services.RentalServiceInterface) *controllers.RentalController {
	return controllers.NewRentalController(rentalService)
}
