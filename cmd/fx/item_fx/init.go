package item_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/api/controllers"
	"closetshare/internal/repositories"
	"closetshare/internal/services"
)

var Module = fx.Provide(
	provideItemRepo, provideItemService, provideItemController,
)

func provideItemRepo(db *gorm.DB) repositories.ItemRepository {
	return repositories.NewItemRepository(db)
}

func provideItemService(itemRepo repositories.ItemRepository, categoryRepo repositories.CategoryRepository, userRepo repositories.UserRepository, logger *zap.Logger) services.ItemServiceInterface {
	return services.NewItemService(itemRepo, categoryRepo, userRepo, logger)
}

func provideItemController(itemService services.ItemServiceInterface) *controllers.ItemController {
	return controllers.NewItemController(itemService)
}
