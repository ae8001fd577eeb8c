package asset

import (
	"time"

	"github.com/google/uuid"
)

type (
	Asset struct {
		ID          uuid.UUID `json:"id"`
		OwnerID     string    `json:"ownerId"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Category    string    `json:"category"`
		ImageKey    string    `json:"imageKey"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
	Assets []Asset

	Pagination struct {
		Total      int  `json:"total"`
		Limit      int  `json:"limit"`
		Offset     int  `json:"offset"`
		TotalPages int  `json:"totalPages"`
		HasMore    bool `json:"hasMore"`
	}
	ListResponse struct {
		Assets     Assets     `json:"assets"`
		Pagination Pagination `json:"pagination"`
	}
)
