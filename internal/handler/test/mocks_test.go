package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"blogsphere/internal/models"
	"blogsphere/internal/service"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListThread(ctx context.Context, postID string) ([]models.CommentNode, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentNode), args.Error(1)
}

func (m *MockCommentService) AddComment(ctx context.Context, postID, authorID, content string, parentID *string) (*models.Comment, error) {
	args := m.Called(ctx, postID, authorID, content, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID, requesterID, content string) (*models.Comment, error) {
	args := m.Called(ctx, commentID, requesterID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	args := m.Called(ctx, commentID, requesterID)
	return args.Error(0)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) LoadPage(ctx context.Context, filter models.FeedFilter, page, limit int, viewerID string) (*models.FeedPage, error) {
	args := m.Called(ctx, filter, page, limit, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedPage), args.Error(1)
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) Toggle(ctx context.Context, postID, userID string, kind models.MarkKind) (*models.ToggleResult, error) {
	args := m.Called(ctx, postID, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ToggleResult), args.Error(1)
}

func (m *MockEngagementService) Bookmark(ctx context.Context, postID, userID string) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementService) Unbookmark(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockEngagementService) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) GetPost(ctx context.Context, postID, viewerID string) (*models.Post, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID string, in models.PostInput) (*models.Post, error) {
	args := m.Called(ctx, authorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, requesterID string, in models.PostInput) (*models.Post, error) {
	args := m.Called(ctx, postID, requesterID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, requesterID string) error {
	args := m.Called(ctx, postID, requesterID)
	return args.Error(0)
}

func (m *MockPostService) AttachImage(ctx context.Context, postID, requesterID, fileName string, file io.Reader, size int64) (*models.Post, error) {
	args := m.Called(ctx, postID, requesterID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, profileID, requesterID string, upd models.ProfileUpdate) (*models.Profile, error) {
	args := m.Called(ctx, profileID, requesterID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, profileID, requesterID, fileName string, file io.Reader, size int64) (*models.Profile, error) {
	args := m.Called(ctx, profileID, requesterID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesBD(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTablesService) Health(ctx context.Context) *service.Health {
	args := m.Called(ctx)
	return args.Get(0).(*service.Health)
}
