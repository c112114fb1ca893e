package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/cmd/fx/account_fx"
	"closetshare/cmd/fx/category_fx"
	"closetshare/cmd/fx/db_fx"
	"closetshare/cmd/fx/item_fx"
	"closetshare/cmd/fx/message_fx"
	"closetshare/cmd/fx/rating_fx"
	"closetshare/cmd/fx/rental_fx"
	"closetshare/cmd/fx/verification_fx"
	"closetshare/internal/api/controllers"
	"closetshare/internal/infra"
	"closetshare/internal/services"
	"closetshare/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		verification_fx.Module,
		category_fx.Module,
		item_fx.Module,
		rental_fx.Module,
		rating_fx.Module,
		message_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(PrepareDatabase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func PrepareDatabase(db *gorm.DB, cfg *infra.Config, logger *zap.Logger) error {
	if err := infra.AutoMigrate(db, logger); err != nil {
		return err
	}
	return infra.Seed(db, cfg, logger)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", cfg.AppPort))
				if err := engine.Run(":" + cfg.AppPort); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	verificationController *controllers.VerificationController,
	categoryController *controllers.CategoryController,
	itemController *controllers.ItemController,
	rentalController *controllers.RentalController,
	ratingController *controllers.RatingController,
	messageController *controllers.MessageController,
) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	api := r.Group("/api")

	// Public surface.
	api.POST("/register", accountController.Register)
	api.POST("/login", accountController.Login)
	api.GET("/categories", categoryController.List)
	api.GET("/items", itemController.List)
	api.GET("/items/:id", itemController.Get)
	api.GET("/users/:id/items", itemController.ListByOwner)
	api.GET("/users/:id/profile", accountController.PublicProfile)
	api.GET("/users/:id/ratings", ratingController.ListForUser)
	api.GET("/users/:id/rating-aggregate", ratingController.Aggregate)

	// Authenticated surface.
	auth := api.Group("", middleware.JWTAuthMiddleware())
	auth.GET("/user", accountController.Me)
	auth.POST("/verification", verificationController.Submit)
	auth.GET("/verification/status", verificationController.Status)
	auth.GET("/my-items", itemController.Mine)
	auth.GET("/my-items-being-rented", rentalController.ActiveForOwner)
	auth.GET("/items/:id/rental-requests", rentalController.ListByItem)
	auth.GET("/rental-requests/pending", rentalController.PendingForOwner)
	auth.GET("/my-rental-requests", rentalController.Mine)
	auth.POST("/messages/send", messageController.Send)
	auth.GET("/messages/thread", messageController.Thread)
	auth.GET("/messages/threads", messageController.Threads)
	auth.PATCH("/messages/read", messageController.MarkRead)

	// Verified-only surface: listing items, the rental lifecycle and
	// ratings all require an approved ID check.
	verified := auth.Group("", middleware.RequireVerified(accountService))
	verified.POST("/items", itemController.Create)
	verified.PATCH("/items/:id/availability", itemController.SetAvailability)
	verified.POST("/rental-requests", rentalController.Create)
	verified.POST("/rental-requests/:id/review", rentalController.Review)
	verified.PATCH("/rental-requests/:id/status", rentalController.Complete)
	verified.POST("/rental-ratings", ratingController.Submit)

	// Admin surface.
	admin := auth.Group("/admin", middleware.RequireAdmin())
	admin.GET("/verification/pending", verificationController.ListPending)
	admin.POST("/verification/:id/review", verificationController.Review)
	admin.POST("/categories", categoryController.Create)

	return r
}
