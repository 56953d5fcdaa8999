package service

import (
	"context"
	"database/sql"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var videoExtensions = map[string]bool{".mp4": true, ".avi": true, ".mov": true, ".mkv": true}

func active[T any](set func(*T)) func() *T {
	return func() *T {
		item := new(T)
		set(item)
		return item
	}
}

func NewEducationCatalog(repo repository.CRUD[model.Education], c cache.Cache, ttl time.Duration) *Catalog[model.Education] {
	return NewCatalog("educations", repo, c, ttl,
		WithDefaults(active(func(e *model.Education) { e.IsActive = true })))
}

func NewExperienceCatalog(repo repository.CRUD[model.Experience], c cache.Cache, ttl time.Duration) *Catalog[model.Experience] {
	return NewCatalog("experiences", repo, c, ttl)
}

func NewLeadershipCatalog(repo repository.CRUD[model.Leadership], c cache.Cache, ttl time.Duration) *Catalog[model.Leadership] {
	return NewCatalog("leaderships", repo, c, ttl,
		WithDefaults(active(func(l *model.Leadership) { l.IsActive = true })))
}

func NewCourseCatalog(repo repository.CRUD[model.Course], c cache.Cache, ttl time.Duration) *Catalog[model.Course] {
	return NewCatalog("courses", repo, c, ttl,
		WithDefaults(active(func(k *model.Course) { k.IsActive = true })))
}

func NewMyContactCatalog(repo repository.CRUD[model.MyContact], c cache.Cache, ttl time.Duration) *Catalog[model.MyContact] {
	return NewCatalog("my-contacts", repo, c, ttl,
		WithDefaults(active(func(m *model.MyContact) { m.IsActive = true })))
}

func NewFeedbackCatalog(repo repository.CRUD[model.Feedback], c cache.Cache, ttl time.Duration) *Catalog[model.Feedback] {
	return NewCatalog("feedbacks", repo, c, ttl,
		WithDefaults(active(func(f *model.Feedback) { f.IsActive = true })))
}

func NewSkillCatalog(repo repository.CRUD[model.Skill], c cache.Cache, ttl time.Duration) *Catalog[model.Skill] {
	return NewCatalog("skills", repo, c, ttl,
		WithDefaults(active(func(s *model.Skill) {
			rating := 4
			s.Rating = &rating
			s.IsActive = true
		})))
}

// NewProjectImageCatalog marks images with an external URL as links rather than uploads.
func NewProjectImageCatalog(repo repository.CRUD[model.ProjectImage], c cache.Cache, ttl time.Duration) *Catalog[model.ProjectImage] {
	return NewCatalog("images", repo, c, ttl,
		WithDefaults(active(func(i *model.ProjectImage) { i.IsImage = true })),
		WithPrepare(func(_, i *model.ProjectImage) error {
			if i.URL != nil && *i.URL != "" {
				i.IsImage = false
			}
			return nil
		}))
}

// NewVideoCatalog restricts uploads to common video containers and keeps the original upload time.
func NewVideoCatalog(repo repository.CRUD[model.Video], c cache.Cache, ttl time.Duration) *Catalog[model.Video] {
	return NewCatalog("videos", repo, c, ttl,
		WithDefaults(active(func(v *model.Video) { v.IsVideo = true })),
		WithPrepare(func(existing, v *model.Video) error {
			if v.VideoKey != nil && *v.VideoKey != "" {
				if !videoExtensions[strings.ToLower(path.Ext(*v.VideoKey))] {
					return fieldError("video_file", "Unsupported video file extension.")
				}
			}
			if v.URL != nil && *v.URL != "" {
				v.IsVideo = false
			}
			if existing != nil {
				v.UploadedAt = existing.UploadedAt
			} else {
				v.UploadedAt = time.Now().UTC()
			}
			return nil
		}))
}

// PortfolioCatalog adds slug lookups to the project catalog.
type PortfolioCatalog struct {
	*Catalog[model.Portfolio]
	repo repository.PortfolioRepository
}

// NewPortfolioCatalog derives the slug from the name on create only; updates keep the stored slug.
func NewPortfolioCatalog(repo repository.PortfolioRepository, c cache.Cache, ttl time.Duration) *PortfolioCatalog {
	cat := NewCatalog[model.Portfolio]("portfolios", repo, c, ttl,
		WithDefaults(active(func(p *model.Portfolio) { p.IsActive = true })),
		WithPrepare(func(existing, p *model.Portfolio) error {
			if existing != nil {
				p.Slug = existing.Slug
				return nil
			}
			name := ""
			if p.Name != nil {
				name = *p.Name
			}
			p.Slug = slug.Make(name)
			return nil
		}))
	return &PortfolioCatalog{Catalog: cat, repo: repo}
}

// BySlug returns the project published under slug.
func (p *PortfolioCatalog) BySlug(ctx context.Context, s string) (*model.Portfolio, error) {
	item, err := p.repo.FindBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}
