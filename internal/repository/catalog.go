package repository

import (
	"context"

	"portfolio/internal/model"
)

// CRUD is the persistence contract shared by the portfolio content kinds.
// Lookups of missing rows return sql.ErrNoRows.
type CRUD[T any] interface {
	// Create inserts a row and returns it as stored (id and defaults filled in by the database).
	Create(ctx context.Context, item *T) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, q ListQuery) (*PageResult[T], error)
	// Update overwrites the writable columns of the row with the given id.
	Update(ctx context.Context, id string, item *T) (*T, error)
	// Delete removes a row. A missing row yields sql.ErrNoRows.
	Delete(ctx context.Context, id string) error
}

// PortfolioRepository adds slug lookups to the project CRUD.
type PortfolioRepository interface {
	CRUD[model.Portfolio]
	FindBySlug(ctx context.Context, slug string) (*model.Portfolio, error)
}
