package asset

type (
	CreateRequest struct {
		OwnerID     string `json:"ownerId"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		ImageKey    string `json:"imageKey"`
	}

	// UpdateRequest distinguishes absent fields from blank ones, so a
	// PATCH can clear description or imageKey without touching the rest.
	UpdateRequest struct {
		OwnerID     *string `json:"ownerId"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		ImageKey    *string `json:"imageKey"`
	}
)
