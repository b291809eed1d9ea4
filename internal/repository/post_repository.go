package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
)

const postColumns = `
	p.id, p.title, p.content, p.excerpt, p.tags, p.image_url, p.author_id,
	p.likes_count, p.comments_count, p.created_at, p.updated_at,
	p.author_id AS "author.id",
	COALESCE(pr.name, '') AS "author.name",
	pr.avatar_url AS "author.avatar_url"`

const postFrom = `FROM posts p LEFT JOIN profiles pr ON pr.id = p.author_id`

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts
		(id, title, content, excerpt, tags, image_url, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Tags == nil {
		post.Tags = pq.StringArray{}
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Author.ID = post.AuthorID

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.Excerpt, post.Tags,
		post.ImageURL, post.AuthorID, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return apperror.Store("posts.insert", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` ` + postFrom + ` WHERE p.id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("post %s", postID)
		}
		return nil, apperror.Store("posts.get", err)
	}

	return &post, nil
}

// List returns posts newest first, sliced by limit/offset.
func (r *PostRepositoryImpl) List(ctx context.Context, filter models.FeedFilter, limit, offset int) ([]models.Post, error) {
	var (
		where []string
		args  []any
	)

	if term := strings.TrimSpace(filter.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", n, n))
	}

	if author := strings.TrimSpace(filter.AuthorID); author != "" {
		args = append(args, author)
		where = append(where, fmt.Sprintf("p.author_id = $%d", len(args)))
	}

	query := `SELECT ` + postColumns + ` ` + postFrom
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, apperror.Store("posts.list", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = $1,
			content = $2,
			excerpt = $3,
			tags = $4,
			image_url = $5,
			updated_at = $6
		WHERE id = $7
	`

	if post.Tags == nil {
		post.Tags = pq.StringArray{}
	}
	post.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Content, post.Excerpt, post.Tags, post.ImageURL, post.UpdatedAt, post.ID)
	if err != nil {
		return apperror.Store("posts.update", err)
	}

	return expectRows(result, "posts.update", "post "+post.ID)
}

func (r *PostRepositoryImpl) SetImageURL(ctx context.Context, postID, imageURL string) error {
	query := `UPDATE posts SET image_url = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, imageURL, time.Now().UTC(), postID)
	if err != nil {
		return apperror.Store("posts.set_image", err)
	}

	return expectRows(result, "posts.set_image", "post "+postID)
}

// Delete removes the post; likes, bookmarks and comments go with it through FK cascades.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return apperror.Store("posts.delete", err)
	}

	return expectRows(result, "posts.delete", "post "+postID)
}

func expectRows(result sql.Result, op, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.Store(op, err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("%s", what)
	}
	return nil
}
