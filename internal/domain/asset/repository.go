package asset

import "context"

// Repository is the persistence gateway for assets. Lookups that miss
// return (nil, nil) rather than an error.
type Repository interface {
	CreateAsset(ctx context.Context, a Asset) (*Asset, error)
	FetchAssetByID(ctx context.Context, id ID) (*Asset, error)
	FetchAssets(ctx context.Context, filter ListFilter, page Page) (Assets, int, error)
	UpdateAsset(ctx context.Context, id ID, upd Update) (*Asset, error)
	DeleteAsset(ctx context.Context, id ID) (bool, error)
}
