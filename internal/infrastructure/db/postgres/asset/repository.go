package asset

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"asset-manager-api/internal/domain/asset"
	"asset-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) asset.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateAsset(ctx context.Context, req asset.Asset) (*asset.Asset, error) {
	a := new(Asset)

	err := r.db.QueryRow(
		ctx,
		InsertAsset,
		req.ID.String(), req.OwnerID, req.Name, req.Description, string(req.Category), req.ImageKey,
	).Scan(
		&a.ID,
		&a.OwnerID,
		&a.Name,
		&a.Description,
		&a.Category,
		&a.ImageKey,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrDuplicateID
		}
		if postgres.IsPgCheckViolation(err) {
			return nil, ErrCategoryRejected
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) FetchAssetByID(ctx context.Context, id asset.ID) (*asset.Asset, error) {
	a := new(Asset)
	err := r.db.QueryRow(ctx, SelectAssetByID, id.String()).Scan(
		&a.ID,
		&a.OwnerID,
		&a.Name,
		&a.Description,
		&a.Category,
		&a.ImageKey,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) FetchAssets(ctx context.Context, filter asset.ListFilter, page asset.Page) (asset.Assets, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, CountAssets, filter.OwnerID, filter.Category).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, SelectAssets, filter.OwnerID, filter.Category, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var as Assets
	for rows.Next() {
		a := new(Asset)

		if err = rows.Scan(
			&a.ID,
			&a.OwnerID,
			&a.Name,
			&a.Description,
			&a.Category,
			&a.ImageKey,

			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(&as), total, nil
}

func (r *Repository) UpdateAsset(ctx context.Context, id asset.ID, upd asset.Update) (*asset.Asset, error) {
	a := new(Asset)

	err := r.db.QueryRow(ctx, UpdateAssetByID,
		upd.Name, upd.Description, (*string)(upd.Category), upd.ImageKey, id.String(),
	).Scan(
		&a.ID,
		&a.OwnerID,
		&a.Name,
		&a.Description,
		&a.Category,
		&a.ImageKey,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if postgres.IsPgCheckViolation(err) {
			return nil, ErrCategoryRejected
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) DeleteAsset(ctx context.Context, id asset.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteAssetByID, id.String())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
