package request_models

type CreateRentalRequest struct {
	ItemID    string `json:"item_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type ReviewRentalRequest struct {
	Action string `json:"action" binding:"required"`
}
