package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

type EngagementService interface {
	Toggle(ctx context.Context, postID, userID string, kind models.MarkKind) (*models.ToggleResult, error)
	Bookmark(ctx context.Context, postID, userID string) (bool, error)
	Unbookmark(ctx context.Context, postID, userID string) error
	ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error)
}

type engagementService struct {
	engagementRepo repository.EngagementRepository
	log            *zap.Logger
}

func NewEngagementService(engagementRepo repository.EngagementRepository, log *zap.Logger) EngagementService {
	return &engagementService{
		engagementRepo: engagementRepo,
		log:            log,
	}
}

// Toggle inverts the viewer's mark on the post. The mark and the post
// counter change in one transaction.
func (s *engagementService) Toggle(ctx context.Context, postID, userID string, kind models.MarkKind) (*models.ToggleResult, error) {
	if err := validateMark(postID, userID, kind); err != nil {
		return nil, err
	}

	active, err := s.engagementRepo.Toggle(ctx, kind, postID, userID)
	if err != nil {
		if apperror.IsStore(err) {
			s.log.Error("engagement toggle failed",
				zap.String("kind", string(kind)),
				zap.String("post_id", postID),
				zap.String("user_id", userID),
				zap.Error(err))
		}
		return nil, err
	}

	return &models.ToggleResult{Active: active}, nil
}

// Bookmark sets the bookmark and reports whether it was newly created. An
// existing bookmark is not an error.
func (s *engagementService) Bookmark(ctx context.Context, postID, userID string) (bool, error) {
	if err := validateMark(postID, userID, models.MarkBookmark); err != nil {
		return false, err
	}

	err := s.engagementRepo.Add(ctx, models.MarkBookmark, postID, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperror.ErrConflict):
		return false, nil
	default:
		if apperror.IsStore(err) {
			s.log.Error("bookmark insert failed",
				zap.String("post_id", postID),
				zap.String("user_id", userID),
				zap.Error(err))
		}
		return false, err
	}
}

func (s *engagementService) Unbookmark(ctx context.Context, postID, userID string) error {
	if err := validateMark(postID, userID, models.MarkBookmark); err != nil {
		return err
	}

	if _, err := s.engagementRepo.Remove(ctx, models.MarkBookmark, postID, userID); err != nil {
		s.log.Error("bookmark delete failed",
			zap.String("post_id", postID),
			zap.String("user_id", userID),
			zap.Error(err))
		return err
	}

	return nil
}

func (s *engagementService) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.Validation("user_id required")
	}
	return s.engagementRepo.ListBookmarks(ctx, userID)
}

func validateMark(postID, userID string, kind models.MarkKind) error {
	if strings.TrimSpace(postID) == "" {
		return apperror.Validation("post id is required")
	}
	if userID == "" {
		return apperror.Validation("user id is required")
	}
	if !kind.Valid() {
		return apperror.Validation("unknown mark kind %q", kind)
	}
	return nil
}
