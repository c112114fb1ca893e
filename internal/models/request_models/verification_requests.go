package request_models

type ReviewVerificationRequest struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}
