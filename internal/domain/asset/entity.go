package asset

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	ID       = uuid.UUID
	Category string
	Asset    struct {
		ID          ID
		OwnerID     string
		Name        string
		Description string
		Category    Category
		ImageKey    string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Assets []*Asset

	// Update carries a partial field replacement; nil means "leave as is".
	Update struct {
		Name        *string
		Description *string
		Category    *Category
		ImageKey    *string
	}

	// ListFilter narrows a listing; empty values match everything.
	ListFilter struct {
		OwnerID  string
		Category string
	}
	Page struct {
		Limit  int
		Offset int
	}
)

const (
	CategoryImage    Category = "image"
	CategoryDocument Category = "document"
	CategoryVideo    Category = "video"
	CategoryOther    Category = "other"
)

// Categories returns the fixed category set in declaration order.
func Categories() []Category {
	return []Category{CategoryImage, CategoryDocument, CategoryVideo, CategoryOther}
}

// ParseCategory matches s against the fixed set, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return "", false
}

func (u Update) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil && u.ImageKey == nil
}
