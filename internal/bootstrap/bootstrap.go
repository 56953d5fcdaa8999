// Package bootstrap prepares storage and seed data before the server starts accepting requests.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"portfolio/internal/config"
	"portfolio/internal/database/migration"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// Branding holds the site-wide strings every page template receives.
type Branding struct {
	Header           string
	Title            string
	IndexTitle       string
	RecaptchaSiteKey string
	MediaBaseURL     string
}

// Deps are the collaborators Run needs.
type Deps struct {
	DB       *sql.DB
	Profiles service.ProfileService
}

var ensureMigrated = migration.EnsureMigrated

// Run migrates the schema, makes sure the canonical profile exists and applies the
// configured initial resume password. It is called once from main.
func Run(ctx context.Context, deps Deps, cfg *config.AppConfig) (*Branding, error) {
	if deps.DB != nil {
		if err := ensureMigrated(ctx, deps.DB, cfg.Database.Host); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	if err := ensureProfile(ctx, deps.Profiles, cfg.Site); err != nil {
		return nil, err
	}

	return &Branding{
		Header:           cfg.Site.Header,
		Title:            cfg.Site.Title,
		IndexTitle:       cfg.Site.IndexTitle,
		RecaptchaSiteKey: cfg.Captcha.PublicKey,
		MediaBaseURL:     cfg.Storage.MediaBaseURL,
	}, nil
}

func ensureProfile(ctx context.Context, profiles service.ProfileService, site config.SiteConfig) error {
	log := slog.Default().With("component", "bootstrap")

	p, err := profiles.Canonical(ctx)
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		p, err = profiles.Create(ctx, &model.Profile{
			FirstName: site.OwnerFirstName,
			LastName:  site.OwnerLastName,
			Email:     site.OwnerEmail,
		}, site.ResumePassword)
		if err != nil {
			return fmt.Errorf("create owner profile: %w", err)
		}
		log.InfoContext(ctx, "owner profile created", "profile_id", p.ID, "resume_password_set", site.ResumePassword != "")
		return nil
	case err != nil:
		return fmt.Errorf("load owner profile: %w", err)
	}

	if site.ResumePassword == "" || p.ResumePasswordHash != "" {
		return nil
	}
	if err := profiles.SetResumePassword(ctx, p.ID, site.ResumePassword); err != nil {
		return fmt.Errorf("set initial resume password: %w", err)
	}
	log.InfoContext(ctx, "initial resume password applied", "profile_id", p.ID)
	return nil
}
