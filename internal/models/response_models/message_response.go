package response_models

import "github.com/google/uuid"

// ThreadPreview is one row of the inbox: the latest message per
// (counterparty, item) pair.
type ThreadPreview struct {
	UserID      uuid.UUID  `json:"user_id"`
	UserName    string     `json:"user_name"`
	ItemID      *uuid.UUID `json:"item_id,omitempty"`
	ItemName    string     `json:"item_name"`
	LastMessage string     `json:"last_message"`
	Timestamp   int64      `json:"timestamp"`
}
