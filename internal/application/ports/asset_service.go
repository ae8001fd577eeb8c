package ports

import (
	"context"

	"asset-manager-api/internal/domain/asset"
)

type AssetService interface {
	FindAssetByID(ctx context.Context, id asset.ID) (*asset.Asset, error)
	FindAssets(ctx context.Context, filter asset.ListFilter, page asset.Page) (asset.Assets, int, error)
	CreateAsset(ctx context.Context, a asset.Asset) (*asset.Asset, error)
	UpdateAsset(ctx context.Context, id asset.ID, upd asset.Update) (*asset.Asset, error)
	DeleteAsset(ctx context.Context, id asset.ID) (bool, error)
}
