package category_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/api/controllers"
	"closetshare/internal/repositories"
	"closetshare/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService, provideCategoryController,
)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, logger *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, logger)
}

func provideCategoryController(categoryService services.CategoryServiceInterface) *controllers.CategoryController {
	return controllers.NewCategoryController(categoryService)
}
