package infra

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"closetshare/internal/models/db_models"
	"closetshare/pkg/utils"
)

var defaultCategories = []db_models.Category{
	{Name: "Formal Wear", Icon: "user-tie"},
	{Name: "Ethnic Wear", Icon: "vest"},
	{Name: "Casual Wear", Icon: "tshirt"},
	{Name: "Party Wear", Icon: "star"},
	{Name: "Winter Wear", Icon: "mitten"},
	{Name: "Accessories", Icon: "hat-cowboy"},
}

// Seed inserts the default categories and the admin account if missing.
func Seed(db *gorm.DB, cfg *Config, logger *zap.Logger) error {
	for _, c := range defaultCategories {
		category := c
		err := db.Where("name = ?", category.Name).First(&db_models.Category{}).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&category).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	if cfg.AdminPassword == "" {
		logger.Info("No admin password configured, skipping admin seed")
		return nil
	}

	err := db.Where("username = ?", cfg.AdminUsername).First(&db_models.User{}).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := db_models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminUsername + "@campus.edu",
		PasswordHash: hash,
		FullName:     "Administrator",
		Hostel:       "N/A",
		IsVerified:   true,
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("Seeded admin account", zap.String("username", cfg.AdminUsername))
	return nil
}
