package asset

import (
	domain "asset-manager-api/internal/domain/asset"
)

func fromDBModel(model *Asset) *domain.Asset {
	var a = &domain.Asset{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		Name:        model.Name,
		Description: model.Description,
		Category:    domain.Category(model.Category),
		ImageKey:    model.ImageKey,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return a
}

func fromDBModels(models *Assets) domain.Assets {
	as := make(domain.Assets, len(*models))
	for idx, a := range *models {
		as[idx] = fromDBModel(a)
	}

	return as
}
