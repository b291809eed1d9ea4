package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"blogsphere/internal/models"
)

type BookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type BookmarksResponse struct {
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

// GetBookmarks lists bookmarks of ?user_id, falling back to the caller.
func (h *Handlers) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		userID = viewer(r)
	}
	if userID == "" {
		WriteError(w, "user_id required", http.StatusBadRequest)
		return
	}

	bookmarks, err := h.EngagementService.ListBookmarks(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, BookmarksResponse{Bookmarks: bookmarks}, http.StatusOK)
}

func (h *Handlers) AddBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	created, err := h.EngagementService.Bookmark(r.Context(), mux.Vars(r)["postId"], userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	WriteJSON(w, BookmarkResponse{Bookmarked: true}, status)
}

func (h *Handlers) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.EngagementService.Unbookmark(r.Context(), mux.Vars(r)["postId"], userID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, BookmarkResponse{Bookmarked: false}, http.StatusOK)
}
