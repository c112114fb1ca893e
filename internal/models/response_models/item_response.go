package response_models

import (
	"github.com/google/uuid"

	"closetshare/internal/models/db_models"
)

type ItemDetail struct {
	db_models.Item
	Owner    *UserSummary     `json:"owner,omitempty"`
	Category *CategorySummary `json:"category,omitempty"`
}

type ItemSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageData   string    `json:"image_data"`
}

type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
