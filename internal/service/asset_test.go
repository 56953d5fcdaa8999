package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	repoMocks "portfolio/internal/repository/mocks"
	"portfolio/internal/storage"
	storeMocks "portfolio/internal/storage/mocks"
)

func newTestAssetService() (*assetService, *storeMocks.MockStorage, *repoMocks.MockAssetRepository) {
	st := new(storeMocks.MockStorage)
	repo := new(repoMocks.MockAssetRepository)
	svc := NewAssetService(st, repo).(*assetService)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600)) }
	return svc, st, repo
}

func TestMediaKey(t *testing.T) {
	tests := []struct {
		filename, contentType string
		pattern               string
	}{
		{"Avatar.PNG", "image/png", `^media/images/[0-9a-f-]{36}\.png$`},
		{"demo.mp4", "video/mp4", `^media/videos/[0-9a-f-]{36}\.mp4$`},
		{"case-study.pdf", "application/pdf", `^media/files/[0-9a-f-]{36}\.pdf$`},
		{"README", "", `^media/files/[0-9a-f-]{36}$`},
	}
	for _, tt := range tests {
		assert.Regexp(t, regexp.MustCompile(tt.pattern), mediaKey(tt.filename, tt.contentType), tt.filename)
	}
}

func TestAssetService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores object then row", func(t *testing.T) {
		svc, st, repo := newTestAssetService()
		r := strings.NewReader("png bytes")

		var key string
		st.On("Put", ctx, mock.AnythingOfType("string"), r, storage.PutObjectOptions{
			Size:        9,
			ContentType: "image/png",
			Metadata:    map[string]string{"original-filename": "Avatar.PNG"},
		}).Run(func(args mock.Arguments) {
			key = args.String(1)
		}).Return(func(_ context.Context, k string, _ io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
			return storage.ObjectInfo{Key: k, Size: 9}
		}, nil).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*model.Asset")).
			Return(func(_ context.Context, a *model.Asset) *model.Asset { return a }, nil).Once()

		a, err := svc.Upload(ctx, r, "uploads/Avatar.PNG", "image/png", 9)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(key, "media/images/"))
		assert.Equal(t, key, a.StoragePath)
		assert.Equal(t, "Avatar.PNG", a.Filename)
		assert.Equal(t, int64(9), a.Size)
		assert.Equal(t, "image/png", a.ContentType)
		assert.Equal(t, time.UTC, a.CreatedAt.Location())
		assert.Equal(t, 5, a.CreatedAt.Hour())
		assert.NotEmpty(t, a.ID)
		st.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc, _, _ := newTestAssetService()
		_, err := svc.Upload(ctx, nil, "a.png", "image/png", 0)
		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("storage failure skips the row", func(t *testing.T) {
		svc, st, repo := newTestAssetService()
		st.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket unreachable")).Once()

		_, err := svc.Upload(ctx, strings.NewReader("x"), "a.png", "image/png", 1)
		assert.EqualError(t, err, "upload to storage: bucket unreachable")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	dbErr := errors.New("insert failed")
	for name, delErr := range map[string]error{
		"row failure removes object":   nil,
		"row failure and cleanup fail": errors.New("remove failed"),
	} {
		t.Run(name, func(t *testing.T) {
			svc, st, repo := newTestAssetService()
			var key string
			st.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) { key = args.String(1) }).
				Return(storage.ObjectInfo{Size: 1}, nil).Once()
			repo.On("Create", ctx, mock.Anything).Return(nil, dbErr).Once()
			st.On("Delete", ctx, mock.MatchedBy(func(k string) bool { return k == key })).Return(delErr).Once()

			_, err := svc.Upload(ctx, strings.NewReader("x"), "clip.mov", "video/quicktime", 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
			if delErr != nil {
				assert.ErrorIs(t, err, delErr)
				assert.Contains(t, err.Error(), "remove orphaned object")
			}
			st.AssertExpectations(t)
		})
	}
}

func TestAssetService_List(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newTestAssetService()

	repo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Asset]{Items: []model.Asset{{ID: "1"}}, Total: 1}, nil).Once()
	res, err := svc.List(ctx, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	repo.On("List", ctx, repository.PageQuery{Limit: 5, Offset: 20}).Return(nil, errors.New("db down")).Once()
	_, err = svc.List(ctx, 5, 20)
	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestAssetService_Delete(t *testing.T) {
	ctx := context.Background()
	stored := &model.Asset{ID: "a-1", StoragePath: "media/images/a-1.png"}

	tests := []struct {
		name    string
		id      string
		setup   func(st *storeMocks.MockStorage, repo *repoMocks.MockAssetRepository)
		wantErr error
		wantMsg string
	}{
		{
			name: "object then row",
			id:   "a-1",
			setup: func(st *storeMocks.MockStorage, repo *repoMocks.MockAssetRepository) {
				repo.On("FindByID", ctx, "a-1").Return(stored, nil)
				st.On("Delete", ctx, stored.StoragePath).Return(nil)
				repo.On("Delete", ctx, "a-1").Return(nil)
			},
		},
		{
			name:    "empty id",
			setup:   func(*storeMocks.MockStorage, *repoMocks.MockAssetRepository) {},
			wantErr: ErrIDRequired,
		},
		{
			name: "unknown id",
			id:   "a-2",
			setup: func(_ *storeMocks.MockStorage, repo *repoMocks.MockAssetRepository) {
				repo.On("FindByID", ctx, "a-2").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "row vanished after lookup",
			id:   "a-1",
			setup: func(st *storeMocks.MockStorage, repo *repoMocks.MockAssetRepository) {
				repo.On("FindByID", ctx, "a-1").Return(stored, nil)
				st.On("Delete", ctx, stored.StoragePath).Return(nil)
				repo.On("Delete", ctx, "a-1").Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage failure keeps the row",
			id:   "a-1",
			setup: func(st *storeMocks.MockStorage, repo *repoMocks.MockAssetRepository) {
				repo.On("FindByID", ctx, "a-1").Return(stored, nil)
				st.On("Delete", ctx, stored.StoragePath).Return(errors.New("access denied"))
			},
			wantMsg: "remove object media/images/a-1.png: access denied",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, repo := newTestAssetService()
			tt.setup(st, repo)

			err := svc.Delete(ctx, tt.id)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.EqualError(t, err, tt.wantMsg)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			default:
				assert.NoError(t, err)
			}
			st.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestAssetService_Link(t *testing.T) {
	ctx := context.Background()
	stored := &model.Asset{ID: "a-1", StoragePath: "media/files/a-1.pdf"}

	t.Run("presigns the stored object", func(t *testing.T) {
		svc, st, repo := newTestAssetService()
		repo.On("FindByID", ctx, "a-1").Return(stored, nil).Once()
		st.On("PresignGet", ctx, stored.StoragePath, AssetLinkTTL).
			Return("https://media.example.com/media/files/a-1.pdf?X-Amz-Signature=abc", nil).Once()

		link, err := svc.Link(ctx, "a-1")
		require.NoError(t, err)
		assert.Equal(t, "https://media.example.com/media/files/a-1.pdf?X-Amz-Signature=abc", link.URL)
		assert.Equal(t, time.Date(2024, 3, 1, 5, 15, 0, 0, time.UTC), link.ExpiresAt)
		st.AssertExpectations(t)
	})

	t.Run("unknown asset", func(t *testing.T) {
		svc, st, repo := newTestAssetService()
		repo.On("FindByID", ctx, "a-9").Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Link(ctx, "a-9")
		assert.ErrorIs(t, err, ErrNotFound)
		st.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("presign failure", func(t *testing.T) {
		svc, st, repo := newTestAssetService()
		repo.On("FindByID", ctx, "a-1").Return(stored, nil).Once()
		st.On("PresignGet", ctx, stored.StoragePath, AssetLinkTTL).Return("", errors.New("no credentials")).Once()

		_, err := svc.Link(ctx, "a-1")
		assert.EqualError(t, err, "presign media/files/a-1.pdf: no credentials")
	})
}
