package asset

import (
	domain "asset-manager-api/internal/domain/asset"
)

func ToResponseAsset(aDomain domain.Asset) Asset {
	var a = Asset{
		ID:          aDomain.ID,
		OwnerID:     aDomain.OwnerID,
		Name:        aDomain.Name,
		Description: aDomain.Description,
		Category:    string(aDomain.Category),
		ImageKey:    aDomain.ImageKey,
		CreatedAt:   aDomain.CreatedAt,
		UpdatedAt:   aDomain.UpdatedAt,
	}

	return a
}

func ToResponseAssets(asDomain domain.Assets) Assets {
	as := make(Assets, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAsset(*a)
	}

	return as
}

// NewPagination derives page metadata from a total row count and the
// clamped limit/offset that produced the page.
func NewPagination(total, limit, offset int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		TotalPages: totalPages,
		HasMore:    offset+limit < total,
	}
}
