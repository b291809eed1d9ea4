package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
	"blogsphere/internal/repository"
)

type CommentService interface {
	ListThread(ctx context.Context, postID string) ([]models.CommentNode, error)
	AddComment(ctx context.Context, postID, authorID, content string, parentID *string) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, requesterID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, requesterID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	log         *zap.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, log *zap.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		log:         log,
	}
}

// ListThread returns top-level comments newest first, each carrying its
// replies oldest first. An unknown post yields an empty thread.
func (s *commentService) ListThread(ctx context.Context, postID string) ([]models.CommentNode, error) {
	roots, err := s.commentRepo.ListRoots(ctx, postID)
	if err != nil {
		return nil, err
	}

	thread := make([]models.CommentNode, 0, len(roots))
	if len(roots) == 0 {
		return thread, nil
	}

	parentIDs := make([]string, 0, len(roots))
	for _, root := range roots {
		parentIDs = append(parentIDs, root.ID)
	}

	replies, err := s.commentRepo.ListReplies(ctx, parentIDs)
	if err != nil {
		return nil, err
	}

	byParent := make(map[string][]models.Comment, len(roots))
	for _, reply := range replies {
		if reply.ParentID == nil {
			continue
		}
		byParent[*reply.ParentID] = append(byParent[*reply.ParentID], reply)
	}

	for _, root := range roots {
		children := byParent[root.ID]
		if children == nil {
			children = []models.Comment{}
		}
		thread = append(thread, models.CommentNode{Comment: root, Replies: children})
	}

	return thread, nil
}

func (s *commentService) AddComment(ctx context.Context, postID, authorID, content string, parentID *string) (*models.Comment, error) {
	postID = strings.TrimSpace(postID)
	content = strings.TrimSpace(content)

	if postID == "" {
		return nil, apperror.Validation("post_id is required")
	}
	if content == "" {
		return nil, apperror.Validation("content is required")
	}
	if authorID == "" {
		return nil, apperror.Validation("author is required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if parentID != nil && strings.TrimSpace(*parentID) == "" {
		parentID = nil
	}
	if parentID != nil {
		if err := s.checkParent(ctx, postID, *parentID); err != nil {
			return nil, err
		}
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   authorID,
		ParentID: parentID,
		Content:  content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		s.log.Warn("comment created but re-read failed",
			zap.String("comment_id", comment.ID),
			zap.Error(err))
		return comment, nil
	}

	return created, nil
}

// checkParent allows replies only to existing top-level comments of the same post.
func (s *commentService) checkParent(ctx context.Context, postID, parentID string) error {
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return fmt.Errorf("%w: %s does not exist", apperror.ErrInvalidParent, parentID)
		}
		return err
	}

	if parent.PostID != postID {
		return fmt.Errorf("%w: %s belongs to another post", apperror.ErrInvalidParent, parentID)
	}
	if !parent.IsTopLevel() {
		return fmt.Errorf("%w: %s is already a reply", apperror.ErrInvalidParent, parentID)
	}

	return nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, requesterID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.Validation("content is required")
	}

	comment, err := s.ownedComment(ctx, commentID, requesterID)
	if err != nil {
		return nil, err
	}

	updatedAt, err := s.commentRepo.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = updatedAt

	return comment, nil
}

// DeleteComment removes the comment together with its replies.
func (s *commentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.ownedComment(ctx, commentID, requesterID)
	if err != nil {
		return err
	}

	removed, err := s.commentRepo.DeleteCascade(ctx, comment)
	if err != nil {
		if apperror.IsStore(err) {
			s.log.Error("comment cascade delete failed",
				zap.String("comment_id", comment.ID),
				zap.String("post_id", comment.PostID),
				zap.Error(err))
		}
		return err
	}

	s.log.Debug("comment deleted",
		zap.String("comment_id", comment.ID),
		zap.Int64("rows", removed))

	return nil
}

func (s *commentService) ownedComment(ctx context.Context, commentID, requesterID string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if requesterID == "" || comment.UserID != requesterID {
		return nil, apperror.Forbidden("comment %s belongs to another user", commentID)
	}

	return comment, nil
}
