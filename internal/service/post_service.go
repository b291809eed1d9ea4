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

type PostService interface {
	GetPost(ctx context.Context, postID, viewerID string) (*models.Post, error)
	CreatePost(ctx context.Context, authorID string, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, postID, requesterID string, in models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	AttachImage(ctx context.Context, postID, requesterID, fileName string, file io.Reader, size int64) (*models.Post, error)
}

type postService struct {
	postRepo       repository.PostRepository
	engagementRepo repository.EngagementRepository
	storage        storage.Storage
	maxUploadSize  int64
	log            *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, engagementRepo repository.EngagementRepository, storage storage.Storage, maxUploadSize int64, log *zap.Logger) PostService {
	return &postService{
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		storage:        storage,
		maxUploadSize:  maxUploadSize,
		log:            log,
	}
}

func (p *postService) GetPost(ctx context.Context, postID, viewerID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	posts := []models.Post{*post}
	setViewerFlags(ctx, p.engagementRepo, p.log, viewerID, posts)

	return &posts[0], nil
}

func (p *postService) CreatePost(ctx context.Context, authorID string, in models.PostInput) (*models.Post, error) {
	if err := validatePostInput(&in); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		Excerpt:  blankToNil(in.Excerpt),
		Tags:     in.Tags,
		ImageURL: blankToNil(in.ImageURL),
		AuthorID: authorID,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return p.reload(ctx, post), nil
}

// UpdatePost rewrites title and content. Excerpt, tags and image URL change
// only when present in the input; an empty value clears them.
func (p *postService) UpdatePost(ctx context.Context, postID, requesterID string, in models.PostInput) (*models.Post, error) {
	if err := validatePostInput(&in); err != nil {
		return nil, err
	}

	post, err := p.ownedPost(ctx, postID, requesterID)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	if in.Excerpt != nil {
		post.Excerpt = blankToNil(in.Excerpt)
	}
	if in.Tags != nil {
		post.Tags = in.Tags
	}

	var replaced *string
	if in.ImageURL != nil {
		next := blankToNil(in.ImageURL)
		if !sameURL(post.ImageURL, next) {
			replaced = post.ImageURL
		}
		post.ImageURL = next
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	p.removeObject(ctx, replaced)
	return post, nil
}

// DeletePost removes the post. Likes, bookmarks and comments go with it in
// the store; the image object is removed afterwards on a best-effort basis.
func (p *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := p.ownedPost(ctx, postID, requesterID)
	if err != nil {
		return err
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	p.removeObject(ctx, post.ImageURL)
	return nil
}

func (p *postService) AttachImage(ctx context.Context, postID, requesterID, fileName string, file io.Reader, size int64) (*models.Post, error) {
	post, err := p.ownedPost(ctx, postID, requesterID)
	if err != nil {
		return nil, err
	}

	img, err := sniffImage(fileName, file, size, p.maxUploadSize)
	if err != nil {
		return nil, err
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, "posts", postID, img.fileName, img.reader, size, img.contentType)
	if err != nil {
		return nil, apperror.Store("storage.upload", err)
	}

	if err := p.postRepo.SetImageURL(ctx, postID, imageURL); err != nil {
		if delErr := p.storage.DeleteImage(ctx, objectName); delErr != nil {
			p.log.Warn("orphaned image object", zap.String("object", objectName), zap.Error(delErr))
		}
		return nil, err
	}

	previous := post.ImageURL
	post.ImageURL = &imageURL
	p.removeObject(ctx, previous)

	return post, nil
}

func (p *postService) ownedPost(ctx context.Context, postID, requesterID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if requesterID == "" || post.AuthorID != requesterID {
		return nil, apperror.Forbidden("post %s belongs to another user", postID)
	}

	return post, nil
}

func (p *postService) reload(ctx context.Context, post *models.Post) *models.Post {
	stored, err := p.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		p.log.Warn("post re-read failed", zap.String("post_id", post.ID), zap.Error(err))
		return post
	}
	return stored
}

func (p *postService) removeObject(ctx context.Context, imageURL *string) {
	if imageURL == nil {
		return
	}

	objectName, ok := p.storage.ObjectNameFromURL(*imageURL)
	if !ok {
		return
	}

	if err := p.storage.DeleteImage(ctx, objectName); err != nil {
		p.log.Warn("image object not removed", zap.String("object", objectName), zap.Error(err))
	}
}

func validatePostInput(in *models.PostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	if in.Title == "" || in.Content == "" {
		return apperror.Validation("title and content are required")
	}

	if in.Tags == nil {
		return nil
	}

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	in.Tags = tags

	return nil
}

func sameURL(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
