package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"blogsphere/internal/apperror"
	"blogsphere/internal/models"
)

// memComments is an in-memory CommentRepository with a fake clock, used to
// check thread behavior end to end.
type memComments struct {
	rows  map[string]models.Comment
	seq   int
	clock time.Time
}

func newMemComments() *memComments {
	return &memComments{
		rows:  make(map[string]models.Comment),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memComments) ListRoots(_ context.Context, postID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range m.rows {
		if c.PostID == postID && c.ParentID == nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memComments) ListReplies(_ context.Context, parentIDs []string) ([]models.Comment, error) {
	want := make(map[string]bool, len(parentIDs))
	for _, id := range parentIDs {
		want[id] = true
	}

	out := []models.Comment{}
	for _, c := range m.rows {
		if c.ParentID != nil && want[*c.ParentID] {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memComments) GetByID(_ context.Context, commentID string) (*models.Comment, error) {
	c, ok := m.rows[commentID]
	if !ok {
		return nil, apperror.NotFound("comment %s", commentID)
	}
	return &c, nil
}

func (m *memComments) Create(_ context.Context, comment *models.Comment) error {
	m.seq++
	m.clock = m.clock.Add(time.Minute)
	comment.ID = "C" + strconv.Itoa(m.seq)
	comment.CreatedAt = m.clock
	comment.UpdatedAt = m.clock
	m.rows[comment.ID] = *comment
	return nil
}

func (m *memComments) UpdateContent(_ context.Context, commentID, content string) (time.Time, error) {
	c, ok := m.rows[commentID]
	if !ok {
		return time.Time{}, apperror.NotFound("comment %s", commentID)
	}
	m.clock = m.clock.Add(time.Minute)
	c.Content = content
	c.UpdatedAt = m.clock
	m.rows[commentID] = c
	return m.clock, nil
}

func (m *memComments) DeleteCascade(_ context.Context, comment *models.Comment) (int64, error) {
	if _, ok := m.rows[comment.ID]; !ok {
		return 0, apperror.NotFound("comment %s", comment.ID)
	}

	var removed int64
	for id, c := range m.rows {
		if c.IsReplyTo(comment.ID) {
			delete(m.rows, id)
			removed++
		}
	}
	delete(m.rows, comment.ID)
	return removed + 1, nil
}
