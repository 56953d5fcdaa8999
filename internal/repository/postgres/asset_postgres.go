package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var assetTable = table[model.Asset]{
	name:    "assets",
	columns: []string{"filename", "storage_path", "size", "content_type", "created_at"},
	orderBy: "created_at DESC, id DESC",
	scan: func(s scanner) (*model.Asset, error) {
		var a model.Asset
		if err := s.Scan(&a.ID, &a.Filename, &a.StoragePath, &a.Size, &a.ContentType, &a.CreatedAt); err != nil {
			return nil, err
		}
		return &a, nil
	},
	values: func(a *model.Asset) []any {
		return []any{a.Filename, a.StoragePath, a.Size, a.ContentType, a.CreatedAt}
	},
}

// AssetPostgres stores uploaded media metadata. Unlike the content kinds, asset ids are
// chosen by the caller so the row and the object key can be correlated in logs.
type AssetPostgres struct {
	*crudPostgres[model.Asset]
}

var _ repository.AssetRepository = (*AssetPostgres)(nil)

// NewAssetPostgres creates a new AssetPostgres repository.
func NewAssetPostgres(db *sql.DB) *AssetPostgres {
	return &AssetPostgres{crudPostgres: newCRUD(db, assetTable)}
}

// Create inserts a new asset row, including its id, and returns the stored record.
func (r *AssetPostgres) Create(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	placeholders := make([]string, len(r.t.columns)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf("INSERT INTO %s (id, %s) VALUES (%s) RETURNING %s",
		r.t.name, strings.Join(r.t.columns, ", "), strings.Join(placeholders, ", "), r.t.selectList())
	args := append([]any{a.ID}, r.t.values(a)...)
	return r.t.scan(r.db.QueryRowContext(ctx, q, args...))
}

// List returns assets newest first.
func (r *AssetPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Asset], error) {
	return r.crudPostgres.List(ctx, repository.ListQuery{PageQuery: pq})
}
