package db_models

import "github.com/google/uuid"

const (
	RentalStatusPending   = "pending"
	RentalStatusApproved  = "approved"
	RentalStatusRejected  = "rejected"
	RentalStatusCompleted = "completed"
)

// RentalRequest is the lifecycle entity of the marketplace. Status moves
// forward only: pending -> approved|rejected, and approved -> completed once
// both completion flags are set. Requests are never deleted.
type RentalRequest struct {
	BaseModel
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index" json:"requester_id"`
	StartDate   int64     `gorm:"not null" json:"start_date"`
	EndDate     int64     `gorm:"not null" json:"end_date"`
	Status      string    `gorm:"type:text;not null;default:pending" json:"status"`

	// Each flag is settable only by its matching party; the status column
	// flips to completed when both are true.
	CompletedByLender   bool `gorm:"not null;default:false" json:"completed_by_lender"`
	CompletedByBorrower bool `gorm:"not null;default:false" json:"completed_by_borrower"`
}

// EffectivelyCompleted reports whether both parties have signed the rental off.
func (r *RentalRequest) EffectivelyCompleted() bool {
	return r.CompletedByLender && r.CompletedByBorrower
}
