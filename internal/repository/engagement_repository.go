package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
)

type EngagementRepositoryImpl struct {
	db *sqlx.DB
}

func NewEngagementRepository(db *sqlx.DB) *EngagementRepositoryImpl {
	return &EngagementRepositoryImpl{db: db}
}

// markTable returns the table holding marks of the given kind and the
// denormalized posts counter it keeps in sync ("" when there is none).
func markTable(kind models.MarkKind) (table, counter string, err error) {
	switch kind {
	case models.MarkLike:
		return "likes", "likes_count", nil
	case models.MarkBookmark:
		return "bookmarks", "", nil
	default:
		return "", "", apperror.Validation("unknown mark kind %q", kind)
	}
}

// Toggle flips the mark for (post, user) and returns whether it is now on.
// Mark and counter commit together. A concurrent insert that wins the
// uniqueness race leaves the mark on, so that case reports active=true.
func (r *EngagementRepositoryImpl) Toggle(ctx context.Context, kind models.MarkKind, postID, userID string) (bool, error) {
	table, counter, err := markTable(kind)
	if err != nil {
		return false, err
	}

	var active bool
	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var exists bool
		err := tx.GetContext(ctx, &exists,
			fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE post_id = $1 AND user_id = $2)`, table),
			postID, userID)
		if err != nil {
			return err
		}

		if exists {
			result, err := tx.ExecContext(ctx,
				fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1 AND user_id = $2`, table), postID, userID)
			if err != nil {
				return err
			}
			n, err := result.RowsAffected()
			if err != nil {
				return err
			}
			active = false
			if n == 0 || counter == "" {
				return nil
			}
			_, err = tx.ExecContext(ctx,
				fmt.Sprintf(`UPDATE posts SET %[1]s = GREATEST(%[1]s - 1, 0) WHERE id = $1`, counter), postID)
			return err
		}

		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (post_id, user_id) VALUES ($1, $2)`, table), postID, userID)
		if err != nil {
			return err
		}
		active = true
		if counter == "" {
			return nil
		}
		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`UPDATE posts SET %[1]s = %[1]s + 1 WHERE id = $1`, counter), postID)
		return err
	})

	switch {
	case err == nil:
		return active, nil
	case isUniqueViolation(err):
		return true, nil
	case isForeignKeyViolation(err):
		return false, apperror.NotFound("post %s", postID)
	default:
		return false, apperror.Store(table+".toggle", err)
	}
}

// Add creates the mark. An existing mark yields ErrConflict.
func (r *EngagementRepositoryImpl) Add(ctx context.Context, kind models.MarkKind, postID, userID string) error {
	table, counter, err := markTable(kind)
	if err != nil {
		return err
	}

	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (post_id, user_id) VALUES ($1, $2)`, table), postID, userID)
		if err != nil || counter == "" {
			return err
		}
		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`UPDATE posts SET %[1]s = %[1]s + 1 WHERE id = $1`, counter), postID)
		return err
	})

	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s already set", apperror.ErrConflict, kind)
	case isForeignKeyViolation(err):
		return apperror.NotFound("post %s", postID)
	default:
		return apperror.Store(table+".insert", err)
	}
}

// Remove deletes the mark and reports whether one existed.
func (r *EngagementRepositoryImpl) Remove(ctx context.Context, kind models.MarkKind, postID, userID string) (bool, error) {
	table, counter, err := markTable(kind)
	if err != nil {
		return false, err
	}

	var removed bool
	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1 AND user_id = $2`, table), postID, userID)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		removed = n > 0
		if !removed || counter == "" {
			return nil
		}
		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`UPDATE posts SET %[1]s = GREATEST(%[1]s - 1, 0) WHERE id = $1`, counter), postID)
		return err
	})
	if err != nil {
		return false, apperror.Store(table+".delete", err)
	}

	return removed, nil
}

// MarkedPostIDs reports which of postIDs carry a mark of this kind from userID.
func (r *EngagementRepositoryImpl) MarkedPostIDs(ctx context.Context, kind models.MarkKind, userID string, postIDs []string) (map[string]bool, error) {
	marked := make(map[string]bool)
	if userID == "" || len(postIDs) == 0 {
		return marked, nil
	}

	table, _, err := markTable(kind)
	if err != nil {
		return nil, err
	}

	var ids []string
	err = r.db.SelectContext(ctx, &ids,
		fmt.Sprintf(`SELECT post_id FROM %s WHERE user_id = $1 AND post_id = ANY($2)`, table),
		userID, pq.Array(postIDs))
	if err != nil {
		return nil, apperror.Store(table+".marked", err)
	}

	for _, id := range ids {
		marked[id] = true
	}
	return marked, nil
}

func (r *EngagementRepositoryImpl) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	query := `
		SELECT post_id, user_id, created_at FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	bookmarks := []models.Bookmark{}
	if err := r.db.SelectContext(ctx, &bookmarks, query, userID); err != nil {
		return nil, apperror.Store("bookmarks.list", err)
	}

	return bookmarks, nil
}
