package db_models

import "github.com/google/uuid"

const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
)

type VerificationRequest struct {
	BaseModel
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	IDImageData string     `gorm:"type:text;not null" json:"id_image_data"` // base64 encoded
	Status      string     `gorm:"type:text;not null;default:pending" json:"status"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt  *int64     `json:"reviewed_at,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
}
