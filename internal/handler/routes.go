package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Auth carries the authentication wrappers used when mounting routes.
type Auth struct {
	Required func(http.Handler) http.Handler
	Optional func(http.Handler) http.Handler
}

// RegisterRoutes mounts the API under r.
func (h *Handlers) RegisterRoutes(r *mux.Router, auth Auth) {
	required := func(f http.HandlerFunc) http.Handler { return auth.Required(f) }
	optional := func(f http.HandlerFunc) http.Handler { return auth.Optional(f) }

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	r.Handle("/me", required(h.GetCurrentUser)).Methods(http.MethodGet)

	r.Handle("/posts", optional(h.GetPosts)).Methods(http.MethodGet)
	r.Handle("/posts", required(h.CreatePost)).Methods(http.MethodPost)
	r.Handle("/posts/{id}", optional(h.GetPost)).Methods(http.MethodGet)
	r.Handle("/posts/{id}", required(h.UpdatePost)).Methods(http.MethodPut)
	r.Handle("/posts/{id}", required(h.DeletePost)).Methods(http.MethodDelete)
	r.Handle("/posts/{id}/image", required(h.UploadPostImage)).Methods(http.MethodPost)
	r.Handle("/posts/{id}/like", required(h.ToggleLike)).Methods(http.MethodPost)
	r.Handle("/posts/{id}/bookmark", required(h.ToggleBookmark)).Methods(http.MethodPost)

	r.HandleFunc("/comments/post/{postId}", h.ListThread).Methods(http.MethodGet)
	r.Handle("/comments", required(h.AddComment)).Methods(http.MethodPost)
	r.Handle("/comments/{id}", required(h.UpdateComment)).Methods(http.MethodPut)
	r.Handle("/comments/{id}", required(h.DeleteComment)).Methods(http.MethodDelete)

	r.Handle("/bookmarks", optional(h.GetBookmarks)).Methods(http.MethodGet)
	r.Handle("/bookmarks/{postId}", required(h.AddBookmark)).Methods(http.MethodPost)
	r.Handle("/bookmarks/{postId}", required(h.RemoveBookmark)).Methods(http.MethodDelete)

	r.HandleFunc("/profiles/{id}", h.GetProfile).Methods(http.MethodGet)
	r.Handle("/profiles/{id}", required(h.UpdateProfile)).Methods(http.MethodPut)
	r.Handle("/profiles/{id}/avatar", required(h.UploadAvatar)).Methods(http.MethodPost)
	r.Handle("/profiles/{id}/posts", optional(h.GetProfilePosts)).Methods(http.MethodGet)

	r.HandleFunc("/ai/suggest", h.Suggest).Methods(http.MethodPost)
}
