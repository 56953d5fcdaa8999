package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"portfolio/internal/repository"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// table describes how one content kind maps onto its SQL table. Columns lists the
// writable columns in the order produced by values; scan reads "id" followed by the
// same columns.
type table[T any] struct {
	name         string
	columns      []string
	orderBy      string
	activeColumn string
	scan         func(s scanner) (*T, error)
	values       func(item *T) []any
}

func (t table[T]) selectList() string {
	return "id, " + strings.Join(t.columns, ", ")
}

func (t table[T]) where(activeOnly bool) string {
	if activeOnly && t.activeColumn != "" {
		return " WHERE " + t.activeColumn + " = TRUE"
	}
	return ""
}

// crudPostgres is a PostgreSQL implementation of repository.CRUD driven by a table
// description. It uses database/sql with parameterized queries and contains no
// business logic.
type crudPostgres[T any] struct {
	db *sql.DB
	t  table[T]
}

func newCRUD[T any](db *sql.DB, t table[T]) *crudPostgres[T] {
	return &crudPostgres[T]{db: db, t: t}
}

// Create inserts a new row and returns the stored record.
func (r *crudPostgres[T]) Create(ctx context.Context, item *T) (*T, error) {
	placeholders := make([]string, len(r.t.columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.t.name, strings.Join(r.t.columns, ", "), strings.Join(placeholders, ", "), r.t.selectList())
	return r.t.scan(r.db.QueryRowContext(ctx, q, r.t.values(item)...))
}

// FindByID fetches a single row by its ID.
func (r *crudPostgres[T]) FindByID(ctx context.Context, id string) (*T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.t.selectList(), r.t.name)
	return r.t.scan(r.db.QueryRowContext(ctx, q, id))
}

// List returns rows using LIMIT/OFFSET pagination and a total count. A non-positive
// limit returns every row.
func (r *crudPostgres[T]) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[T], error) {
	where := r.t.where(lq.ActiveOnly)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.t.name+where).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s", r.t.selectList(), r.t.name, where, r.t.orderBy)
	args := []any{}
	if lq.Limit > 0 {
		q += " LIMIT $1 OFFSET $2"
		args = append(args, lq.Limit, lq.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.t.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[T]{Items: items, Total: total}, nil
}

// Update overwrites all writable columns and returns the stored record.
func (r *crudPostgres[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	sets := make([]string, len(r.t.columns))
	for i, c := range r.t.columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	args := append(r.t.values(item), id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.t.name, strings.Join(sets, ", "), len(args), r.t.selectList())
	return r.t.scan(r.db.QueryRowContext(ctx, q, args...))
}

// Delete removes a row by ID. It returns sql.ErrNoRows when no row matched.
func (r *crudPostgres[T]) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "DELETE FROM "+r.t.name+" WHERE id = $1", id)
}

// execOne runs a statement that must touch at least one row.
func execOne(ctx context.Context, db *sql.DB, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
