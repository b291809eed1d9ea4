package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
)

const commentColumns = `
	c.id, c.post_id, c.user_id, c.parent_id, c.content, c.created_at, c.updated_at,
	c.user_id AS "author.id",
	COALESCE(pr.name, '') AS "author.name",
	pr.avatar_url AS "author.avatar_url"`

const commentFrom = `FROM comments c LEFT JOIN profiles pr ON pr.id = c.user_id`

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

// ListRoots returns the top-level comments of a post, newest first.
func (r *CommentRepositoryImpl) ListRoots(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` ` + commentFrom + `
		WHERE c.post_id = $1 AND c.parent_id IS NULL
		ORDER BY c.created_at DESC, c.id DESC`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, apperror.Store("comments.list_roots", err)
	}

	return comments, nil
}

// ListReplies returns the replies of all given parents, oldest first.
func (r *CommentRepositoryImpl) ListReplies(ctx context.Context, parentIDs []string) ([]models.Comment, error) {
	replies := []models.Comment{}
	if len(parentIDs) == 0 {
		return replies, nil
	}

	query := `SELECT ` + commentColumns + ` ` + commentFrom + `
		WHERE c.parent_id = ANY($1)
		ORDER BY c.created_at ASC, c.id ASC`

	if err := r.db.SelectContext(ctx, &replies, query, pq.Array(parentIDs)); err != nil {
		return nil, apperror.Store("comments.list_replies", err)
	}

	return replies, nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` ` + commentFrom + ` WHERE c.id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("comment %s", commentID)
		}
		return nil, apperror.Store("comments.get", err)
	}

	return &comment, nil
}

// Create inserts the comment and bumps the post's comment counter in one transaction.
func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	comment.Author.ID = comment.UserID

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO comments (id, post_id, user_id, parent_id, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			comment.ID, comment.PostID, comment.UserID, comment.ParentID,
			comment.Content, comment.CreatedAt, comment.UpdatedAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE posts SET comments_count = comments_count + 1 WHERE id = $1`, comment.PostID)
		return err
	})
	if err != nil {
		switch {
		case isForeignKeyViolation(err) && pgConstraint(err) == constraintCommentParent:
			return fmt.Errorf("%w: %s no longer exists", apperror.ErrInvalidParent, *comment.ParentID)
		case isForeignKeyViolation(err):
			return apperror.NotFound("post %s", comment.PostID)
		default:
			return apperror.Store("comments.insert", err)
		}
	}

	return nil
}

// UpdateContent rewrites the body and returns the stored updated_at.
func (r *CommentRepositoryImpl) UpdateContent(ctx context.Context, commentID, content string) (time.Time, error) {
	query := `UPDATE comments SET content = $1, updated_at = $2 WHERE id = $3`

	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query, content, updatedAt, commentID)
	if err != nil {
		return time.Time{}, apperror.Store("comments.update", err)
	}

	if err := expectRows(result, "comments.update", "comment "+commentID); err != nil {
		return time.Time{}, err
	}
	return updatedAt, nil
}

// DeleteCascade removes the direct replies first, then the comment itself,
// and adjusts the post's comment counter. It returns the number of rows removed.
func (r *CommentRepositoryImpl) DeleteCascade(ctx context.Context, comment *models.Comment) (int64, error) {
	var removed int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE parent_id = $1`, comment.ID)
		if err != nil {
			return err
		}
		replies, err := result.RowsAffected()
		if err != nil {
			return err
		}

		result, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, comment.ID)
		if err != nil {
			return err
		}
		self, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if self == 0 {
			return apperror.NotFound("comment %s", comment.ID)
		}

		removed = replies + self

		_, err = tx.ExecContext(ctx,
			`UPDATE posts SET comments_count = GREATEST(comments_count - $1, 0) WHERE id = $2`,
			removed, comment.PostID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return 0, err
		}
		return 0, apperror.Store("comments.delete_cascade", err)
	}

	return removed, nil
}
