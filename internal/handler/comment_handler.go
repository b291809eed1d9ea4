package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type AddCommentRequest struct {
	Content  string  `json:"content" validate:"required"`
	PostID   string  `json:"post_id" validate:"required"`
	ParentID *string `json:"parent_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) ListThread(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	thread, err := h.CommentService.ListThread(r.Context(), postID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, thread, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req AddCommentRequest
	if !h.decode(w, r, &req) {
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), req.PostID, userID, req.Content, req.ParentID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if !h.decode(w, r, &req) {
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), mux.Vars(r)["id"], userID, req.Content)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Comment deleted successfully"}, http.StatusOK)
}
