package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// MockCRUD mocks repository.CRUD for any content kind.
type MockCRUD[T any] struct {
	mock.Mock
}

func (m *MockCRUD[T]) Create(ctx context.Context, item *T) (*T, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T]) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[T], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[T]), args.Error(1)
}

func (m *MockCRUD[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	args := m.Called(ctx, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPortfolioRepository struct {
	MockCRUD[model.Portfolio]
}

func (m *MockPortfolioRepository) FindBySlug(ctx context.Context, slug string) (*model.Portfolio, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}
