package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("only owner", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		svc := NewProfileService(profiles, new(MockStorage), 1<<20, zap.NewNop())

		_, err := svc.UpdateProfile(ctx, "U1", "U2", models.ProfileUpdate{Name: strPtr("x")})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
		profiles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("blank fields keep old values", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("GetByID", ctx, "U1").Return(&models.Profile{ID: "U1", Name: "Ann", Bio: strPtr("old bio")}, nil)
		profiles.On("Update", ctx, mock.MatchedBy(func(p *models.Profile) bool {
			return p.Name == "Ann" && *p.Bio == "new bio" && p.AvatarURL == nil
		})).Return(nil)

		svc := NewProfileService(profiles, new(MockStorage), 1<<20, zap.NewNop())
		profile, err := svc.UpdateProfile(ctx, "U1", "U1", models.ProfileUpdate{
			Name:      strPtr(""),
			Bio:       strPtr("new bio"),
			AvatarURL: nil,
		})

		require.NoError(t, err)
		assert.Equal(t, "new bio", *profile.Bio)
		profiles.AssertExpectations(t)
	})
}

func TestProfileService_UploadAvatar(t *testing.T) {
	ctx := context.Background()
	oldURL := "http://cdn/images/avatars/U1/old.png"

	profiles := new(MockProfileRepository)
	store := new(MockStorage)
	profiles.On("GetByID", ctx, "U1").Return(&models.Profile{ID: "U1", AvatarURL: &oldURL}, nil)
	store.On("UploadImage", ctx, "avatars", "U1", "me.png", mock.Anything, int64(len(pngHeader)), "image/png").
		Return("avatars/U1/new.png", "http://cdn/images/avatars/U1/new.png", nil)
	profiles.On("Update", ctx, mock.Anything).Return(nil)
	store.On("ObjectNameFromURL", oldURL).Return("avatars/U1/old.png", true)
	store.On("DeleteImage", ctx, "avatars/U1/old.png").Return(nil)

	svc := NewProfileService(profiles, store, 1<<20, zap.NewNop())

	_, err := svc.UploadAvatar(ctx, "U1", "U2", "me.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	profile, err := svc.UploadAvatar(ctx, "U1", "U1", "me.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/images/avatars/U1/new.png", *profile.AvatarURL)
	store.AssertExpectations(t)
}

func TestProfileService_GetProfile(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := NewProfileService(profiles, new(MockStorage), 0, zap.NewNop())

	_, err := svc.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
