package asset

const (
	InsertAsset = `
		INSERT INTO assets (id, owner_id, name, description, category, image_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, owner_id, name, description, category, image_key, created_at, updated_at
	`
	SelectAssetByID = `
		SELECT id, owner_id, name, description, category, image_key, created_at, updated_at
		FROM assets
		WHERE id = $1
	`
	SelectAssets = `
		SELECT id, owner_id, name, description, category, image_key, created_at, updated_at
		FROM assets
		WHERE ($1 = '' OR owner_id = $1)
		  AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	CountAssets = `
		SELECT count(*)
		FROM assets
		WHERE ($1 = '' OR owner_id = $1)
		  AND ($2 = '' OR category = $2)
	`
	UpdateAssetByID = `
		UPDATE assets
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    category = COALESCE($3, category),
		    image_key = COALESCE($4, image_key),
		    updated_at = now()
		WHERE id = $5
		RETURNING
		  id, owner_id, name, description, category, image_key, created_at, updated_at
	`
	DeleteAssetByID = `DELETE FROM assets WHERE id = $1`
)
