package request_models

type SubmitRatingRequest struct {
	RentalRequestID string `json:"rental_request_id" binding:"required"`
	RatedUserID     string `json:"rated_user_id" binding:"required"`
	Score           int    `json:"score" binding:"required"`
	Comment         string `json:"comment"`
}
