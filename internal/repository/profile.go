package repository

import (
	"context"

	"portfolio/internal/model"
)

// ProfileRepository persists profiles. Update never writes the resume password hash or
// the resume key; those change only through their dedicated setters.
type ProfileRepository interface {
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)
	// First returns the canonical profile: the earliest created row.
	First(ctx context.Context) (*model.Profile, error)
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Profile], error)
	Update(ctx context.Context, id string, p *model.Profile) (*model.Profile, error)
	Delete(ctx context.Context, id string) error
	SetResumePasswordHash(ctx context.Context, id, hash string) error
	SetResumeKey(ctx context.Context, id string, key *string) error
}
