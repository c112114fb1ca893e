package db_models

import "github.com/google/uuid"

type Item struct {
	BaseModel
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Size        string    `gorm:"not null" json:"size"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	PricePerDay int       `gorm:"not null" json:"price_per_day"` // in cents
	ImageData   string    `gorm:"type:text;not null" json:"image_data"` // base64 encoded
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
}
