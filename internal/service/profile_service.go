package service

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
	"blogsphere/internal/repository"
	"blogsphere/internal/storage"
)

type ProfileService interface {
	GetProfile(ctx context.Context, profileID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profileID, requesterID string, upd models.ProfileUpdate) (*models.Profile, error)
	UploadAvatar(ctx context.Context, profileID, requesterID, fileName string, file io.Reader, size int64) (*models.Profile, error)
}

type profileService struct {
	profileRepo   repository.ProfileRepository
	storage       storage.Storage
	maxUploadSize int64
	log           *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, storage storage.Storage, maxUploadSize int64, log *zap.Logger) ProfileService {
	return &profileService{
		profileRepo:   profileRepo,
		storage:       storage,
		maxUploadSize: maxUploadSize,
		log:           log,
	}
}

func (s *profileService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	if strings.TrimSpace(profileID) == "" {
		return nil, apperror.Validation("profile id is required")
	}
	return s.profileRepo.GetByID(ctx, profileID)
}

func (s *profileService) UpdateProfile(ctx context.Context, profileID, requesterID string, upd models.ProfileUpdate) (*models.Profile, error) {
	if requesterID == "" || profileID != requesterID {
		return nil, apperror.Forbidden("not authorized to update profile %s", profileID)
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if v := blankToNil(upd.Name); v != nil {
		profile.Name = *v
	}
	if v := blankToNil(upd.Bio); v != nil {
		profile.Bio = v
	}
	if v := blankToNil(upd.AvatarURL); v != nil {
		profile.AvatarURL = v
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, profileID, requesterID, fileName string, file io.Reader, size int64) (*models.Profile, error) {
	if requesterID == "" || profileID != requesterID {
		return nil, apperror.Forbidden("not authorized to update profile %s", profileID)
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	img, err := sniffImage(fileName, file, size, s.maxUploadSize)
	if err != nil {
		return nil, err
	}

	objectName, avatarURL, err := s.storage.UploadImage(ctx, "avatars", profileID, img.fileName, img.reader, size, img.contentType)
	if err != nil {
		return nil, apperror.Store("storage.upload", err)
	}

	previous := profile.AvatarURL
	profile.AvatarURL = &avatarURL

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			s.log.Warn("orphaned avatar object", zap.String("object", objectName), zap.Error(delErr))
		}
		return nil, err
	}

	if previous != nil {
		if name, ok := s.storage.ObjectNameFromURL(*previous); ok {
			if err := s.storage.DeleteImage(ctx, name); err != nil {
				s.log.Warn("old avatar not removed", zap.String("object", name), zap.Error(err))
			}
		}
	}

	return profile, nil
}
