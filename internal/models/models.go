package models

import (
	"time"

	"github.com/lib/pq"
)

type Profile struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Bio       *string   `json:"bio" db:"bio"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AuthorSummary is the slice of a profile embedded into posts and comments.
type AuthorSummary struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"avatar_url"`
}

type Post struct {
	ID            string         `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Content       string         `json:"content" db:"content"`
	Excerpt       *string        `json:"excerpt" db:"excerpt"`
	Tags          pq.StringArray `json:"tags" db:"tags"`
	ImageURL      *string        `json:"image_url" db:"image_url"`
	AuthorID      string         `json:"author_id" db:"author_id"`
	Author        AuthorSummary  `json:"author" db:"author"`
	LikesCount    int            `json:"likes_count" db:"likes_count"`
	CommentsCount int            `json:"comments_count" db:"comments_count"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`

	// per-viewer flags, never persisted with the post
	IsLiked      bool `json:"is_liked" db:"-"`
	IsBookmarked bool `json:"is_bookmarked" db:"-"`
}

// Comment is either top-level (ParentID == nil) or a reply to a top-level comment.
type Comment struct {
	ID        string        `json:"id" db:"id"`
	PostID    string        `json:"post_id" db:"post_id"`
	UserID    string        `json:"user_id" db:"user_id"`
	ParentID  *string       `json:"parent_id" db:"parent_id"`
	Content   string        `json:"content" db:"content"`
	Author    AuthorSummary `json:"author" db:"author"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

func (c Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

func (c Comment) IsReplyTo(parentID string) bool {
	return c.ParentID != nil && *c.ParentID == parentID
}

// CommentNode is a top-level comment with its replies in ascending creation order.
type CommentNode struct {
	Comment
	Replies []Comment `json:"replies"`
}

type MarkKind string

const (
	MarkLike     MarkKind = "like"
	MarkBookmark MarkKind = "bookmark"
)

func (k MarkKind) Valid() bool {
	return k == MarkLike || k == MarkBookmark
}

type Bookmark struct {
	PostID    string    `json:"post_id" db:"post_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ToggleResult struct {
	Active bool `json:"active"`
}

type FeedFilter struct {
	Search   string
	AuthorID string
}

// FeedPage is one slice of the feed. HasMore is true iff the page came back full.
type FeedPage struct {
	Posts   []Post `json:"posts"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	HasMore bool   `json:"hasMore"`
}

// PostInput carries the author-editable fields of a post. On update a nil
// Excerpt, Tags or ImageURL leaves the stored value as it is.
type PostInput struct {
	Title    string
	Content  string
	Excerpt  *string
	Tags     []string
	ImageURL *string
}

// ProfileUpdate holds optional profile changes. Nil or blank fields are left as they are.
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	AvatarURL *string
}

type Suggestions struct {
	Titles   []string   `json:"titles"`
	Outlines [][]string `json:"outlines"`
	Excerpt  string     `json:"excerpt"`
}
