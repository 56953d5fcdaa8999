package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

func strPtr(s string) *string { return &s }

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var educationCols = []string{"id", "degree", "school", "major", "minor", "focus_area", "is_active", "date", "year", "description"}

func TestEducationPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEducationPostgres(db)

	e := &model.Education{Degree: strPtr("BSc"), School: strPtr("MIT"), IsActive: true}

	mock.ExpectQuery("INSERT INTO educations \\(degree, school").
		WithArgs("BSc", "MIT", nil, nil, nil, true, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(educationCols).
			AddRow("edu-1", "BSc", "MIT", nil, nil, nil, true, nil, nil, nil))

	out, err := repo.Create(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, "edu-1", out.ID)
	assert.Equal(t, "MIT", *out.School)
	assert.Nil(t, out.Major)
	assert.Nil(t, out.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEducationPostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEducationPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		date := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT (.+) FROM educations WHERE id = ?").
			WithArgs("edu-1").
			WillReturnRows(sqlmock.NewRows(educationCols).
				AddRow("edu-1", "BSc", "MIT", "CS", nil, nil, true, date, "2020", "desc"))

		e, err := repo.FindByID(ctx, "edu-1")

		require.NoError(t, err)
		assert.Equal(t, "CS", *e.Major)
		assert.True(t, date.Equal(*e.Date))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM educations WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		e, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, e)
	})
}

func TestCrudPostgres_List(t *testing.T) {
	t.Run("active only without limit", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCoursePostgres(db)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM courses WHERE is_active = TRUE").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery("SELECT (.+) FROM courses WHERE is_active = TRUE ORDER BY date DESC NULLS LAST, id$").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active", "date", "description"}).
				AddRow("c1", "Go", true, nil, nil).
				AddRow("c2", "SQL", true, nil, "joins"))

		res, err := repo.List(context.Background(), repository.ListQuery{ActiveOnly: true})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "joins", *res.Items[1].Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("paged", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewExperiencePostgres(db)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM experiences$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectQuery("SELECT (.+) FROM experiences ORDER BY start_date DESC, id LIMIT").
			WithArgs(6, 6).
			WillReturnRows(sqlmock.NewRows([]string{"id", "job_title", "company_name", "location", "start_date", "end_date", "is_current", "active", "description"}).
				AddRow("x1", "Engineer", "Acme", nil, time.Now(), nil, true, true, ""))

		res, err := repo.List(context.Background(), repository.ListQuery{PageQuery: repository.PageQuery{Limit: 6, Offset: 6}})

		require.NoError(t, err)
		assert.Equal(t, 7, res.Total)
		assert.Len(t, res.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("kind without active flag ignores filter", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewVideoPostgres(db)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM videos$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM videos ORDER BY name, id$").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url", "video_key", "uploaded_at", "is_video"}))

		res, err := repo.List(context.Background(), repository.ListQuery{ActiveOnly: true})

		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.NotNil(t, res.Items)
	})

	t.Run("count error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewSkillPostgres(db)

		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("db down"))

		res, err := repo.List(context.Background(), repository.ListQuery{})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestCrudPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLeadershipPostgres(db)

	l := &model.Leadership{Name: strPtr("Chess club"), IsActive: true, Description: "<p>president</p>"}

	mock.ExpectQuery("UPDATE leaderships SET name = \\$1, is_active = \\$2, date = \\$3, description = \\$4 WHERE id = \\$5").
		WithArgs("Chess club", true, nil, "<p>president</p>", "l-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active", "date", "description"}).
			AddRow("l-1", "Chess club", true, nil, "<p>president</p>"))

	out, err := repo.Update(context.Background(), "l-1", l)

	require.NoError(t, err)
	assert.Equal(t, "l-1", out.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudPostgres_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFeedbackPostgres(db)

	mock.ExpectExec("DELETE FROM feedbacks WHERE id = ?").
		WithArgs("f-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM feedbacks WHERE id = ?").
		WithArgs("f-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "f-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "f-2"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var portfolioCols = []string{"id", "name", "image_key", "is_active", "slug", "description", "body", "date",
	"is_side_project", "for_resume", "url", "year", "technology"}

func TestPortfolioPostgres_Technology(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPortfolioPostgres(db)

	t.Run("json column round trips", func(t *testing.T) {
		p := &model.Portfolio{Name: strPtr("Game Recommender"), Slug: "game-recommender", IsActive: true,
			Technology: json.RawMessage(`["Go","Postgres"]`)}

		mock.ExpectQuery("INSERT INTO portfolios").
			WithArgs("Game Recommender", nil, true, "game-recommender", nil, "", nil, nil, false, nil, nil, []byte(`["Go","Postgres"]`)).
			WillReturnRows(sqlmock.NewRows(portfolioCols).
				AddRow("p-1", "Game Recommender", nil, true, "game-recommender", nil, "", nil, nil, false, nil, nil, []byte(`["Go","Postgres"]`)))

		out, err := repo.Create(context.Background(), p)

		require.NoError(t, err)
		assert.JSONEq(t, `["Go","Postgres"]`, string(out.Technology))
	})

	t.Run("null technology", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM portfolios WHERE slug = ?").
			WithArgs("game-recommender").
			WillReturnRows(sqlmock.NewRows(portfolioCols).
				AddRow("p-1", "Game Recommender", nil, true, "game-recommender", nil, "", nil, true, false, nil, nil, nil))

		out, err := repo.FindBySlug(context.Background(), "game-recommender")

		require.NoError(t, err)
		assert.Nil(t, out.Technology)
		assert.True(t, *out.IsSideProject)
		assert.Equal(t, "/portfolio/game-recommender", out.AbsoluteURL())
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
