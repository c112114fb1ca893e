package response_models

import "github.com/google/uuid"

// UserSummary is the public slice of a user attached to items, rentals and
// verification listings.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Hostel   string    `json:"hostel"`
}

type PublicProfile struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Hostel      string    `json:"hostel"`
	IsVerified  bool      `json:"is_verified"`
	AvgRating   float64   `json:"avg_rating"` // 0.00-5.00
	RatingCount int       `json:"rating_count"`
	ItemCount   int       `json:"item_count"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}
