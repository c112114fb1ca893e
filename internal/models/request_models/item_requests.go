package request_models

// CreateItemRequest arrives as multipart form fields next to the image file.
type CreateItemRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Size        string `form:"size" binding:"required"`
	CategoryID  string `form:"category_id" binding:"required"`
	PricePerDay int    `form:"price_per_day" binding:"required"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
