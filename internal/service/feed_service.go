package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"blogsphere/internal/apperror"
	"blogsphere/internal/config"
	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

type FeedService interface {
	LoadPage(ctx context.Context, filter models.FeedFilter, page, limit int, viewerID string) (*models.FeedPage, error)
}

type feedService struct {
	postRepo       repository.PostRepository
	engagementRepo repository.EngagementRepository
	cfg            config.Feed
	log            *zap.Logger
}

func NewFeedService(postRepo repository.PostRepository, engagementRepo repository.EngagementRepository, cfg config.Feed, log *zap.Logger) FeedService {
	return &feedService{
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		cfg:            cfg,
		log:            log,
	}
}

// LoadPage fetches rows [page*limit, (page+1)*limit) newest first.
// HasMore is set when the page came back full.
func (s *feedService) LoadPage(ctx context.Context, filter models.FeedFilter, page, limit int, viewerID string) (*models.FeedPage, error) {
	if page < 0 {
		return nil, apperror.Validation("page must not be negative")
	}

	limit = s.pageSize(limit)
	if page > math.MaxInt/limit {
		return nil, apperror.Validation("page %d is out of range", page)
	}

	posts, err := s.postRepo.List(ctx, filter, limit, page*limit)
	if err != nil {
		return nil, err
	}

	setViewerFlags(ctx, s.engagementRepo, s.log, viewerID, posts)

	return &models.FeedPage{
		Posts:   posts,
		Page:    page,
		Limit:   limit,
		HasMore: len(posts) == limit,
	}, nil
}

func (s *feedService) pageSize(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return limit
}

// setViewerFlags fills IsLiked/IsBookmarked for the viewer. The flags are
// decoration, so a failed lookup is logged and the posts go out unflagged.
func setViewerFlags(ctx context.Context, engagementRepo repository.EngagementRepository, log *zap.Logger, viewerID string, posts []models.Post) {
	if viewerID == "" || len(posts) == 0 {
		return
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	liked, err := engagementRepo.MarkedPostIDs(ctx, models.MarkLike, viewerID, ids)
	if err != nil {
		log.Warn("viewer like flags unavailable", zap.String("viewer_id", viewerID), zap.Error(err))
		return
	}

	bookmarked, err := engagementRepo.MarkedPostIDs(ctx, models.MarkBookmark, viewerID, ids)
	if err != nil {
		log.Warn("viewer bookmark flags unavailable", zap.String("viewer_id", viewerID), zap.Error(err))
		return
	}

	for i := range posts {
		posts[i].IsLiked = liked[posts[i].ID]
		posts[i].IsBookmarked = bookmarked[posts[i].ID]
	}
}
