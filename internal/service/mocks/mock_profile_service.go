package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Canonical(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) List(ctx context.Context, limit, offset int) (*service.ListResult[model.Profile], error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Profile]), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Create(ctx context.Context, p *model.Profile, password string) (*model.Profile, error) {
	args := m.Called(ctx, p, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, id string, p *model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileService) SetResumePassword(ctx context.Context, id, password string) error {
	args := m.Called(ctx, id, password)
	return args.Error(0)
}

func (m *MockProfileService) UploadResume(ctx context.Context, id string, r io.Reader) (*model.Profile, error) {
	args := m.Called(ctx, id, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) OpenResume(ctx context.Context, password string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
