package request_models

type SendMessageRequest struct {
	ToUserID string `json:"to_user_id" binding:"required"`
	ItemID   string `json:"item_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type MarkThreadReadRequest struct {
	FromUserID string `json:"from_user_id" binding:"required"`
	ItemID     string `json:"item_id" binding:"required"`
}
