package asset

import (
	"time"

	"github.com/google/uuid"
)

type (
	Asset struct {
		ID          uuid.UUID
		OwnerID     string
		Name        string
		Description string
		Category    string
		ImageKey    string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Assets []*Asset
)
