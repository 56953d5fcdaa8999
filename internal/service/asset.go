package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

const (
	mediaPrefix = "media"
	// AssetLinkTTL is how long a presigned asset link stays valid.
	AssetLinkTTL = 15 * time.Minute
)

// AssetLink is a time-limited download URL for an asset.
type AssetLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AssetService manages uploaded media. Content entities reference an asset through its
// StoragePath (the *_key fields).
type AssetService interface {
	// Upload stores the content and records it. The object is removed again if the
	// record cannot be saved.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Asset, error)
	List(ctx context.Context, limit, offset int) (*ListResult[model.Asset], error)
	Get(ctx context.Context, id string) (*model.Asset, error)
	// Link presigns a download URL valid for AssetLinkTTL.
	Link(ctx context.Context, id string) (*AssetLink, error)
	Delete(ctx context.Context, id string) error
}

type assetService struct {
	store storage.Storage
	repo  repository.AssetRepository
	now   func() time.Time
}

// NewAssetService constructs a new AssetService.
func NewAssetService(store storage.Storage, repo repository.AssetRepository) AssetService {
	return &assetService{store: store, repo: repo, now: time.Now}
}

// mediaKey places an upload under a folder picked from its content type, e.g.
// media/images/<uuid>.png.
func mediaKey(filename, contentType string) string {
	kind := "files"
	switch {
	case strings.HasPrefix(contentType, "image/"):
		kind = "images"
	case strings.HasPrefix(contentType, "video/"):
		kind = "videos"
	}
	return path.Join(mediaPrefix, kind, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
}

func (s *assetService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Asset, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	name := filepath.Base(originalFilename)
	key := mediaKey(name, contentType)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": name},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if info.ContentType == "" {
		info.ContentType = contentType
	}
	stored, err := s.repo.Create(ctx, &model.Asset{
		ID:          uuid.NewString(),
		Filename:    name,
		StoragePath: key,
		Size:        info.Size,
		ContentType: info.ContentType,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("save asset: %w", errors.Join(err, fmt.Errorf("remove orphaned object: %w", delErr)))
		}
		return nil, fmt.Errorf("save asset: %w", err)
	}
	return stored, nil
}

func (s *assetService) List(ctx context.Context, limit, offset int) (*ListResult[model.Asset], error) {
	limit, offset = normalizePage(limit, offset)
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.Asset]{Items: res.Items, Total: res.Total}, nil
}

func (s *assetService) Get(ctx context.Context, id string) (*model.Asset, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (s *assetService) Link(ctx context.Context, id string) (*AssetLink, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	expires := s.now().Add(AssetLinkTTL).UTC()
	u, err := s.store.PresignGet(ctx, a.StoragePath, AssetLinkTTL)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", a.StoragePath, err)
	}
	return &AssetLink{URL: u, ExpiresAt: expires}, nil
}

// Delete removes the object before the row so a failed storage call never leaves an
// unreferenced object behind.
func (s *assetService) Delete(ctx context.Context, id string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, a.StoragePath); err != nil {
		return fmt.Errorf("remove object %s: %w", a.StoragePath, err)
	}
	return notFound(s.repo.Delete(ctx, id))
}
