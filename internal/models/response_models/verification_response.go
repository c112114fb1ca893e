package response_models

import "closetshare/internal/models/db_models"

type VerificationDetail struct {
	db_models.VerificationRequest
	User *UserSummary `json:"user,omitempty"`
}
