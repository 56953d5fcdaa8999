package postgres

import (
	"context"
	"database/sql"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ContactPostgres stores contact form submissions.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a submission. The id and submitted_at are assigned by the database.
func (r *ContactPostgres) Create(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error) {
	const q = `
		INSERT INTO contact_messages (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, phone, subject, message, submitted_at
	`
	return scanContact(r.db.QueryRowContext(ctx, q, m.Name, m.Email, m.Phone, m.Subject, m.Message))
}

func (r *ContactPostgres) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	const q = `
		SELECT id, name, email, phone, subject, message, submitted_at
		FROM contact_messages
		WHERE id = $1
	`
	return scanContact(r.db.QueryRowContext(ctx, q, id))
}

// List returns submissions newest first.
func (r *ContactPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ContactMessage], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, email, phone, subject, message, submitted_at
		FROM contact_messages
		ORDER BY submitted_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactMessage, 0)
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ContactMessage]{Items: items, Total: total}, nil
}

// Delete returns sql.ErrNoRows when no message has the id.
func (r *ContactPostgres) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, `DELETE FROM contact_messages WHERE id = $1`, id)
}

func scanContact(s scanner) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := s.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.SubmittedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
