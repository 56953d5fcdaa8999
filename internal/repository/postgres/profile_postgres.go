package postgres

import (
	"context"
	"database/sql"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const profileColumns = `id, first_name, last_name, email, title, biography, avatar_key, resume_key,
	resume_password_hash, work_key, welcome_summary, intro_summary, resume_summary,
	academic_projects_summary, side_projects_summary, contact_summary, created_at, updated_at`

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

// Create inserts a profile, including its already hashed resume password.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	const q = `
		INSERT INTO profiles (first_name, last_name, email, title, biography, avatar_key, resume_key,
			resume_password_hash, work_key, welcome_summary, intro_summary, resume_summary,
			academic_projects_summary, side_projects_summary, contact_summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + profileColumns
	row := r.db.QueryRowContext(ctx, q,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Title,
		p.Biography,
		p.AvatarKey,
		p.ResumeKey,
		p.ResumePasswordHash,
		p.WorkKey,
		p.WelcomeSummary,
		p.IntroSummary,
		p.ResumeSummary,
		p.AcademicProjectsSummary,
		p.SideProjectsSummary,
		p.ContactSummary,
	)
	return scanProfile(row)
}

// First returns the earliest created profile.
func (r *ProfilePostgres) First(ctx context.Context) (*model.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at, id LIMIT 1`
	return scanProfile(r.db.QueryRowContext(ctx, q))
}

// FindByID fetches a single profile by its ID.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, q, id))
}

// List returns profiles oldest first, so the canonical profile leads the first page.
func (r *ProfilePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Profile], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Profile]{Items: items, Total: total}, nil
}

// Update writes the editable profile fields. The stored password hash and resume key
// are left untouched.
func (r *ProfilePostgres) Update(ctx context.Context, id string, p *model.Profile) (*model.Profile, error) {
	const q = `
		UPDATE profiles SET
			first_name = $1, last_name = $2, email = $3, title = $4, biography = $5,
			avatar_key = $6, work_key = $7, welcome_summary = $8, intro_summary = $9,
			resume_summary = $10, academic_projects_summary = $11, side_projects_summary = $12,
			contact_summary = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING ` + profileColumns
	row := r.db.QueryRowContext(ctx, q,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Title,
		p.Biography,
		p.AvatarKey,
		p.WorkKey,
		p.WelcomeSummary,
		p.IntroSummary,
		p.ResumeSummary,
		p.AcademicProjectsSummary,
		p.SideProjectsSummary,
		p.ContactSummary,
		id,
	)
	return scanProfile(row)
}

// Delete removes a profile by ID. It returns sql.ErrNoRows when the profile is missing.
func (r *ProfilePostgres) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, `DELETE FROM profiles WHERE id = $1`, id)
}

// SetResumePasswordHash stores a new hash. It returns sql.ErrNoRows when the profile is missing.
func (r *ProfilePostgres) SetResumePasswordHash(ctx context.Context, id, hash string) error {
	const q = `UPDATE profiles SET resume_password_hash = $1, updated_at = NOW() WHERE id = $2`
	return execOne(ctx, r.db, q, hash, id)
}

// SetResumeKey attaches (or with nil, detaches) the resume object.
func (r *ProfilePostgres) SetResumeKey(ctx context.Context, id string, key *string) error {
	const q = `UPDATE profiles SET resume_key = $1, updated_at = NOW() WHERE id = $2`
	return execOne(ctx, r.db, q, key, id)
}

func scanProfile(s scanner) (*model.Profile, error) {
	var p model.Profile
	if err := s.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Title,
		&p.Biography,
		&p.AvatarKey,
		&p.ResumeKey,
		&p.ResumePasswordHash,
		&p.WorkKey,
		&p.WelcomeSummary,
		&p.IntroSummary,
		&p.ResumeSummary,
		&p.AcademicProjectsSummary,
		&p.SideProjectsSummary,
		&p.ContactSummary,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
