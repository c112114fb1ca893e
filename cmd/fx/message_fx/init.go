package message_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/api/controllers"
	"closetshare/internal/repositories"
	"closetshare/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessageService, provideMessageController,
)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, itemRepo repositories.ItemRepository, logger *zap.Logger) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, userRepo, itemRepo, logger)
}

func provideMessageController(messageService services.MessageServiceInterface) *controllers.MessageController {
	return controllers.NewMessageController(messageService)
}
