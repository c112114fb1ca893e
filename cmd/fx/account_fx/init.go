package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/api/controllers"
	"closetshare/internal/repositories"
	"closetshare/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService, provideAccountController,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, itemRepo repositories.ItemRepository, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, itemRepo, logger)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
