package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var assetCols = []string{"id", "filename", "storage_path", "size", "content_type", "created_at"}

func TestAssetPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssetPostgres(db)

	now := time.Now().UTC()
	a := &model.Asset{
		ID:          "a-1",
		Filename:    "a-1.png",
		StoragePath: "media/a-1.png",
		Size:        123,
		ContentType: "image/png",
		CreatedAt:   now,
	}

	mock.ExpectQuery(`INSERT INTO assets \(id, filename, storage_path, size, content_type, created_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)`).
		WithArgs(a.ID, a.Filename, a.StoragePath, a.Size, a.ContentType, a.CreatedAt).
		WillReturnRows(sqlmock.NewRows(assetCols).AddRow(a.ID, a.Filename, a.StoragePath, a.Size, a.ContentType, a.CreatedAt))

	out, err := repo.Create(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, "a-1", out.ID)
	assert.Equal(t, "media/a-1.png", out.StoragePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetPostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssetPostgres(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM assets WHERE id = ").
			WithArgs("a-1").
			WillReturnRows(sqlmock.NewRows(assetCols).AddRow("a-1", "f.png", "media/f.png", 100, "image/png", time.Now()))

		a, err := repo.FindByID(context.Background(), "a-1")

		require.NoError(t, err)
		assert.Equal(t, int64(100), a.Size)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM assets WHERE id = ").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByID(context.Background(), "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, a)
	})
}

func TestAssetPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssetPostgres(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM assets`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM assets ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(assetCols).AddRow("a-1", "f.png", "media/f.png", 100, "image/png", time.Now()))

	res, err := repo.List(context.Background(), repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetPostgres_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssetPostgres(db)

	mock.ExpectExec("DELETE FROM assets WHERE id = ").
		WithArgs("a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "a-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
