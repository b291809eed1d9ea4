package testRepository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

func TestProfileRepository(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, email, name, bio, avatar_url, created_at, updated_at FROM profiles WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "bio", "avatar_url", "created_at", "updated_at"}).
			AddRow("user-1", "ann@example.com", "Ann", nil, nil, at(0), at(0)))

	profile, err := repo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.Name)

	mock.ExpectQuery(`FROM profiles WHERE id`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	update := &models.Profile{ID: "user-1", Name: "Ann B", Bio: stringPtr("writer")}
	mock.ExpectExec(`UPDATE profiles SET name = \$1, bio = \$2, avatar_url = \$3, updated_at = \$4 WHERE id = \$5`).
		WithArgs("Ann B", "writer", nil, sqlmock.AnyArg(), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(ctx, update))
	assert.False(t, update.UpdatedAt.IsZero())

	mock.ExpectExec(`UPDATE profiles`).WillReturnError(errors.New("down"))
	assert.True(t, apperror.IsStore(repo.Update(ctx, update)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTablesRepository_CountTablesDB(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTablesRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountTablesDB(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
