package db_models

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name     string     `gorm:"uniqueIndex;not null" json:"name"`
	ParentID *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`
	Icon     string     `gorm:"not null;default:tshirt" json:"icon"`
}
