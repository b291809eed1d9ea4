// Package state holds the presentation-side view models. Every transition
// takes the current value and an input and returns the next value; nothing
// here talks to the store.
package state

import "blogsphere/internal/models"

// Feed is the accumulated infinite-scroll list for one filter.
type Feed struct {
	Filter models.FeedFilter
	Items  []models.Post
	Cursor int
	More   bool
}

// NewFeed returns the initial state for filter.
func NewFeed(filter models.FeedFilter) Feed {
	return Feed{Filter: filter, Items: []models.Post{}, More: true}
}

// Reset clears accumulated items. Call it whenever the filter changes.
func (f Feed) Reset(filter models.FeedFilter) Feed {
	return NewFeed(filter)
}

// NextPage is the page index to request next.
func (f Feed) NextPage() int {
	if len(f.Items) == 0 {
		return 0
	}
	return f.Cursor + 1
}

// Apply folds a loaded page into the feed. Page 0 replaces the items, later
// pages append. More follows the page.
func (f Feed) Apply(page models.FeedPage) Feed {
	next := Feed{
		Filter: f.Filter,
		Cursor: page.Page,
		More:   page.HasMore,
	}

	if page.Page == 0 {
		next.Items = append([]models.Post{}, page.Posts...)
		return next
	}

	next.Items = make([]models.Post, 0, len(f.Items)+len(page.Posts))
	next.Items = append(next.Items, f.Items...)
	next.Items = append(next.Items, page.Posts...)
	return next
}

// ApplyEngagement reconciles a like toggle result into the local copy of the post.
func (f Feed) ApplyEngagement(postID string, kind models.MarkKind, active bool) Feed {
	items := make([]models.Post, len(f.Items))
	copy(items, f.Items)

	for i := range items {
		if items[i].ID != postID {
			continue
		}

		switch kind {
		case models.MarkLike:
			if items[i].IsLiked != active {
				if active {
					items[i].LikesCount++
				} else if items[i].LikesCount > 0 {
					items[i].LikesCount--
				}
			}
			items[i].IsLiked = active
		case models.MarkBookmark:
			items[i].IsBookmarked = active
		}
	}

	f.Items = items
	return f
}
