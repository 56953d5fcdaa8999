package repository

import (
	"context"

	"portfolio/internal/model"
)

// AssetRepository defines data access for uploaded media using SQL queries only.
// Implementations hold no business logic.
type AssetRepository interface {
	// Create inserts a new asset record and returns the stored row.
	Create(ctx context.Context, asset *model.Asset) (*model.Asset, error)

	// FindByID returns an asset by its ID.
	FindByID(ctx context.Context, id string) (*model.Asset, error)

	// List returns a paginated list of assets and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Asset], error)

	// Delete removes an asset by ID. It returns sql.ErrNoRows if the row did not exist.
	Delete(ctx context.Context, id string) error
}
