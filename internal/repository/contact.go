package repository

import (
	"context"

	"portfolio/internal/model"
)

// ContactRepository persists contact form submissions. There is deliberately no
// update operation: submissions are immutable once written.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.ContactMessage], error)
	Delete(ctx context.Context, id string) error
}
