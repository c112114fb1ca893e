package db_models

import "github.com/google/uuid"

type Message struct {
	BaseModel
	FromUserID uuid.UUID  `gorm:"type:uuid;not null;index" json:"from_user_id"`
	ToUserID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"to_user_id"`
	ItemID     *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	IsRead     bool       `gorm:"not null;default:false" json:"is_read"`
}
