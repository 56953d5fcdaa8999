package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var profileCols = []string{"id", "first_name", "last_name", "email", "title", "biography", "avatar_key", "resume_key",
	"resume_password_hash", "work_key", "welcome_summary", "intro_summary", "resume_summary",
	"academic_projects_summary", "side_projects_summary", "contact_summary", "created_at", "updated_at"}

func profileRow(id, hash string, resume any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(profileCols).AddRow(id, "Ada", "Lovelace", "ada@example.com", nil, "bio", nil, resume,
		hash, nil, "w", "i", "r", "a", "s", "c", now, now)
}

func TestProfilePostgres_First(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProfilePostgres(db)

	t.Run("earliest profile", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM profiles ORDER BY created_at, id LIMIT 1").
			WillReturnRows(profileRow("p-1", "$2a$hash", "resumes/cv.pdf"))

		p, err := repo.First(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "p-1", p.ID)
		assert.Equal(t, "$2a$hash", p.ResumePasswordHash)
		assert.True(t, p.HasResume())
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM profiles ORDER BY").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.First(context.Background())

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, p)
	})
}

func TestProfilePostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProfilePostgres(db)

	p := &model.Profile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", ResumePasswordHash: "$2a$hash"}
	p.ApplyDefaults()

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs("Ada", "Lovelace", "ada@example.com", nil, model.DefaultBiography, nil, nil, "$2a$hash", nil,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(profileRow("p-1", "$2a$hash", nil))

	out, err := repo.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, "p-1", out.ID)
	assert.False(t, out.HasResume())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilePostgres_UpdateLeavesSecretsAlone(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProfilePostgres(db)

	p := &model.Profile{FirstName: "Ada", LastName: "King", ResumePasswordHash: "must-not-be-written",
		ResumeKey: strPtr("must-not-be-written")}

	args := make([]driver.Value, 0, 14)
	args = append(args, "Ada", "King")
	for i := 0; i < 11; i++ {
		args = append(args, sqlmock.AnyArg())
	}
	args = append(args, "p-1")

	mock.ExpectQuery("UPDATE profiles SET").
		WithArgs(args...).
		WillReturnRows(profileRow("p-1", "$2a$original", nil))

	out, err := repo.Update(context.Background(), "p-1", p)

	require.NoError(t, err)
	assert.Equal(t, "$2a$original", out.ResumePasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilePostgres_SetResumePasswordHash(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProfilePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE profiles SET resume_password_hash").
		WithArgs("$2a$new", "p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SetResumePasswordHash(ctx, "p-1", "$2a$new"))

	mock.ExpectExec("UPDATE profiles SET resume_password_hash").
		WithArgs("$2a$new", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetResumePasswordHash(ctx, "missing", "$2a$new"), sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilePostgres_SetResumeKey(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProfilePostgres(db)

	mock.ExpectExec("UPDATE profiles SET resume_key").
		WithArgs(nil, "p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetResumeKey(context.Background(), "p-1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilePostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProfilePostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM profiles ORDER BY created_at, id LIMIT").
		WithArgs(10, 0).
		WillReturnRows(profileRow("p-1", "", nil))

	res, err := repo.List(context.Background(), repository.PageQuery{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Ada Lovelace", res.Items[0].FullName())
}
