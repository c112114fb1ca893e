package db_models

import "github.com/google/uuid"

// Rating is written once per party per completed rental and never updated or
// deleted. The unique index backs the at-most-one-rating-per-rater invariant.
type Rating struct {
	BaseModel
	FromUserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_request_rater" json:"from_user_id"`
	ToUserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"to_user_id"`
	RentalRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_request_rater" json:"rental_request_id"`
	Score           int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment         string    `gorm:"type:text" json:"comment,omitempty"`
}
