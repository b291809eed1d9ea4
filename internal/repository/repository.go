package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"blogsphere/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, filter models.FeedFilter, limit, offset int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	SetImageURL(ctx context.Context, postID, imageURL string) error
	Delete(ctx context.Context, postID string) error
}

type CommentRepository interface {
	ListRoots(ctx context.Context, postID string) ([]models.Comment, error)
	ListReplies(ctx context.Context, parentIDs []string) ([]models.Comment, error)
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	UpdateContent(ctx context.Context, commentID, content string) (time.Time, error)
	DeleteCascade(ctx context.Context, comment *models.Comment) (int64, error)
}

type EngagementRepository interface {
	Toggle(ctx context.Context, kind models.MarkKind, postID, userID string) (bool, error)
	Add(ctx context.Context, kind models.MarkKind, postID, userID string) error
	Remove(ctx context.Context, kind models.MarkKind, postID, userID string) (bool, error)
	MarkedPostIDs(ctx context.Context, kind models.MarkKind, userID string, postIDs []string) (map[string]bool, error)
	ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error)
}

type ProfileRepository interface {
	GetByID(ctx context.Context, profileID string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	Post       PostRepository
	Comment    CommentRepository
	Engagement EngagementRepository
	Profile    ProfileRepository
	Tables     TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:       NewPostRepository(db),
		Comment:    NewCommentRepository(db),
		Engagement: NewEngagementRepository(db),
		Profile:    NewProfileRepository(db),
		Tables:     NewTablesRepository(db),
	}
}
