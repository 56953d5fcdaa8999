package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/repository"
)

// Catalog implements the CRUD use cases shared by every portfolio content kind.
// Active listings are cached and the cache entry is dropped on every write of the kind.
type Catalog[T any] struct {
	kind    string
	repo    repository.CRUD[T]
	cache   cache.Cache
	ttl     time.Duration
	newItem func() *T
	prepare func(existing, item *T) error
}

// CatalogOption customizes a Catalog.
type CatalogOption[T any] func(*Catalog[T])

// WithDefaults sets the constructor used for new items, so omitted JSON fields keep their defaults.
func WithDefaults[T any](fn func() *T) CatalogOption[T] {
	return func(c *Catalog[T]) { c.newItem = fn }
}

// WithPrepare installs a hook run before validation on create (existing == nil) and update.
func WithPrepare[T any](fn func(existing, item *T) error) CatalogOption[T] {
	return func(c *Catalog[T]) { c.prepare = fn }
}

// NewCatalog constructs a Catalog for one content kind. c may be nil.
func NewCatalog[T any](kind string, repo repository.CRUD[T], c cache.Cache, ttl time.Duration, opts ...CatalogOption[T]) *Catalog[T] {
	cat := &Catalog[T]{kind: kind, repo: repo, cache: c, ttl: ttl, newItem: func() *T { return new(T) }}
	for _, o := range opts {
		o(cat)
	}
	return cat
}

// Kind is the collection name, e.g. "skills".
func (c *Catalog[T]) Kind() string { return c.kind }

// New returns an item with the kind's defaults applied.
func (c *Catalog[T]) New() *T { return c.newItem() }

func (c *Catalog[T]) activeKey() string { return "catalog:" + c.kind + ":active" }

// List returns a page of every row, active or not.
func (c *Catalog[T]) List(ctx context.Context, limit, offset int) (*ListResult[T], error) {
	limit, offset = normalizePage(limit, offset)
	res, err := c.repo.List(ctx, repository.ListQuery{PageQuery: repository.PageQuery{Limit: limit, Offset: offset}})
	if err != nil {
		return nil, err
	}
	return &ListResult[T]{Items: res.Items, Total: res.Total}, nil
}

// ListActive returns every active row in display order.
func (c *Catalog[T]) ListActive(ctx context.Context) ([]T, error) {
	var items []T
	if cache.GetJSON(ctx, c.cache, c.activeKey(), &items) {
		return items, nil
	}
	res, err := c.repo.List(ctx, repository.ListQuery{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, c.cache, c.activeKey(), res.Items, c.ttl)
	return res.Items, nil
}

func (c *Catalog[T]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	item, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (c *Catalog[T]) Create(ctx context.Context, item *T) (*T, error) {
	if err := c.check(nil, item); err != nil {
		return nil, err
	}
	out, err := c.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return out, nil
}

func (c *Catalog[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	existing, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.check(existing, item); err != nil {
		return nil, err
	}
	out, err := c.repo.Update(ctx, id, item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.invalidate(ctx)
	return out, nil
}

func (c *Catalog[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	c.invalidate(ctx)
	return nil
}

func (c *Catalog[T]) check(existing, item *T) error {
	if c.prepare != nil {
		if err := c.prepare(existing, item); err != nil {
			return err
		}
	}
	return validateStruct(item)
}

func (c *Catalog[T]) invalidate(ctx context.Context) {
	if c.cache != nil {
		_ = c.cache.Delete(ctx, c.activeKey())
	}
}
