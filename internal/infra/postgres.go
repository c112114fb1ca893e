package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"closetshare/internal/models/db_models"
)

func InitPostgresql(cfg *Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("Error connecting to database", zap.Error(err))
	}
	return db
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting database instance", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}

func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.VerificationRequest{},
		&db_models.Category{},
		&db_models.Item{},
		&db_models.RentalRequest{},
		&db_models.Rating{},
		&db_models.Message{},
	)
	if err != nil {
		logger.Error("Auto migration failed", zap.Error(err))
	}
	return err
}
