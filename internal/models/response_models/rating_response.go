package response_models

type RatingAggregate struct {
	AvgRating   float64 `json:"avg_rating"` // 0.00-5.00
	RatingCount int     `json:"rating_count"`
}
