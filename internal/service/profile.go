package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/metrics"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

// MaxResumeSize bounds resume uploads.
const MaxResumeSize = 10 << 20

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// ProfileService defines the profile and resume use cases.
type ProfileService interface {
	// Canonical returns the first profile in storage or ErrProfileNotFound.
	Canonical(ctx context.Context) (*model.Profile, error)
	List(ctx context.Context, limit, offset int) (*ListResult[model.Profile], error)
	Get(ctx context.Context, id string) (*model.Profile, error)
	// Create stores a profile. A non-empty password is hashed once and stored with it.
	Create(ctx context.Context, p *model.Profile, password string) (*model.Profile, error)
	// Update persists the editable fields. It never touches the resume password hash.
	Update(ctx context.Context, id string, p *model.Profile) (*model.Profile, error)
	Delete(ctx context.Context, id string) error
	// SetResumePassword hashes password once and stores the hash.
	SetResumePassword(ctx context.Context, id, password string) error
	// UploadResume stores a PDF and attaches it to the profile, replacing any previous file.
	UploadResume(ctx context.Context, id string, r io.Reader) (*model.Profile, error)
	// OpenResume returns the canonical resume stream when password verifies. The caller
	// must close the reader.
	OpenResume(ctx context.Context, password string) (io.ReadCloser, storage.ObjectInfo, error)
}

type profileService struct {
	repo    repository.ProfileRepository
	store   storage.Storage
	metrics *metrics.Domain
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(repo repository.ProfileRepository, store storage.Storage, m *metrics.Domain) ProfileService {
	return &profileService{repo: repo, store: store, metrics: m}
}

// VerifyResumePassword reports whether password matches the profile's stored hash.
// An empty password or an unset hash never verifies.
func VerifyResumePassword(p *model.Profile, password string) bool {
	if p == nil || password == "" || p.ResumePasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.ResumePasswordHash), []byte(password)) == nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", fieldError("password", "This field is required.")
	}
	if len(password) > maxPasswordBytes {
		return "", fieldError("password", fmt.Sprintf("Ensure this value has at most %d bytes.", maxPasswordBytes))
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func (s *profileService) Canonical(ctx context.Context) (*model.Profile, error) {
	p, err := s.repo.First(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) List(ctx context.Context, limit, offset int) (*ListResult[model.Profile], error) {
	limit, offset = normalizePage(limit, offset)
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.Profile]{Items: res.Items, Total: res.Total}, nil
}

func (s *profileService) Get(ctx context.Context, id string) (*model.Profile, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) Create(ctx context.Context, p *model.Profile, password string) (*model.Profile, error) {
	p.ApplyDefaults()
	if err := validateStruct(p); err != nil {
		return nil, err
	}
	p.ResumePasswordHash = ""
	if password != "" {
		h, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		p.ResumePasswordHash = h
	}
	return s.repo.Create(ctx, p)
}

func (s *profileService) Update(ctx context.Context, id string, p *model.Profile) (*model.Profile, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := validateStruct(p); err != nil {
		return nil, err
	}
	out, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.Delete(ctx, id))
}

func (s *profileService) SetResumePassword(ctx context.Context, id, password string) error {
	if id == "" {
		return ErrIDRequired
	}
	h, err := hashPassword(password)
	if err != nil {
		return err
	}
	if err := s.repo.SetResumePasswordHash(ctx, id, h); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *profileService) UploadResume(ctx context.Context, id string, r io.Reader) (*model.Profile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxResumeSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxResumeSize {
		return nil, fieldError("resume", fmt.Sprintf("Ensure this file is at most %d MB.", MaxResumeSize>>20))
	}
	if err := checkPDF(data); err != nil {
		return nil, fieldError("resume", "Upload a valid PDF file.")
	}

	key := "resumes/" + uuid.NewString() + ".pdf"
	if _, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: "application/pdf",
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.SetResumeKey(ctx, id, &key); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("save resume key: %w", errors.Join(err, fmt.Errorf("remove orphaned object: %w", delErr)))
		}
		return nil, fmt.Errorf("save resume key: %w", err)
	}

	if current.HasResume() {
		if err := s.store.Delete(ctx, *current.ResumeKey); err != nil {
			slog.WarnContext(ctx, "failed to remove previous resume", "key", *current.ResumeKey, "error", err)
		}
	}
	return s.Get(ctx, id)
}

// checkPDF parses data as a PDF. The parser panics on some malformed input, so that
// is reported as an error too.
func checkPDF(data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNotPDF, r)
		}
	}()
	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
	if rd.NumPage() == 0 {
		return ErrNotPDF
	}
	return nil
}

func (s *profileService) OpenResume(ctx context.Context, password string) (io.ReadCloser, storage.ObjectInfo, error) {
	p, err := s.Canonical(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			s.metrics.ResumeDownload("no_profile")
		}
		return nil, storage.ObjectInfo{}, err
	}
	if !VerifyResumePassword(p, password) {
		s.metrics.ResumeDownload("forbidden")
		return nil, storage.ObjectInfo{}, ErrIncorrectPassword
	}
	if !p.HasResume() {
		s.metrics.ResumeDownload("missing")
		return nil, storage.ObjectInfo{}, ErrResumeNotUploaded
	}

	rc, info, err := s.store.Get(ctx, *p.ResumeKey)
	if err != nil {
		s.metrics.ResumeDownload("error")
		return nil, storage.ObjectInfo{}, &ResumeReadError{Err: err}
	}
	s.metrics.ResumeDownload("served")
	return rc, info, nil
}
