package testRepository

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	return sqlxDB, mock
}

func stringPtr(s string) *string {
	return &s
}

var postRowColumns = []string{
	"id", "title", "content", "excerpt", "tags", "image_url", "author_id",
	"likes_count", "comments_count", "created_at", "updated_at",
	"author.id", "author.name", "author.avatar_url",
}

var commentRowColumns = []string{
	"id", "post_id", "user_id", "parent_id", "content", "created_at", "updated_at",
	"author.id", "author.name", "author.avatar_url",
}

func at(minute int) time.Time {
	return time.Date(2026, 1, 2, 10, minute, 0, 0, time.UTC)
}

// timeArg matches any time argument and keeps it for later assertions.
type timeArg struct {
	value time.Time
}

func (a *timeArg) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	if ok {
		a.value = t
	}
	return ok
}
