package verification_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/api/controllers"
	"closetshare/internal/repositories"
	"closetshare/internal/services"
)

var Module = fx.Provide(
	provideVerificationRepo, provideVerificationService, provideVerificationController,
)

func provideVerificationRepo(db *gorm.DB) repositories.VerificationRepository {
	return repositories.NewVerificationRepository(db)
}

func provideVerificationService(verificationRepo repositories.VerificationRepository, userRepo repositories.UserRepository, logger *zap.Logger) services.VerificationServiceInterface {
	return services.NewVerificationService(verificationRepo, userRepo, logger)
}

func provideVerificationController(verificationService services.VerificationServiceInterface) *controllers.VerificationController {
	return controllers.NewVerificationController(verificationService)
}
