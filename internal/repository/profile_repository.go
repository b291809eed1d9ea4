package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT id, email, name, bio, avatar_url, created_at, updated_at FROM profiles WHERE id = $1`

	err := r.db.GetContext(ctx, &profile, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("profile %s", profileID)
		}
		return nil, apperror.Store("profiles.get", err)
	}

	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, bio = $2, avatar_url = $3, updated_at = $4
		WHERE id = $5
	`

	profile.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		profile.Name, profile.Bio, profile.AvatarURL, profile.UpdatedAt, profile.ID)
	if err != nil {
		return apperror.Store("profiles.update", err)
	}

	return expectRows(result, "profiles.update", "profile "+profile.ID)
}
