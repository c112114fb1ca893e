package response_models

import "closetshare/internal/models/db_models"

// RentalRequestDetail decorates a rental request with the item and party
// summaries the client renders alongside it.
type RentalRequestDetail struct {
	db_models.RentalRequest
	Item      *ItemSummary `json:"item,omitempty"`
	Requester *UserSummary `json:"requester,omitempty"`
	Owner     *UserSummary `json:"owner,omitempty"`
}
