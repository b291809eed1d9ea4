package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"blogsphere/internal/models"
)

type PaginationResponse struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

type PostsGetResponse struct {
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type PostRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Excerpt  *string  `json:"excerpt"`
	Tags     []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	ImageURL *string  `json:"image_url" validate:"omitempty,url"`
}

func (p PostRequest) input() models.PostInput {
	return models.PostInput{
		Title:    p.Title,
		Content:  p.Content,
		Excerpt:  p.Excerpt,
		Tags:     p.Tags,
		ImageURL: p.ImageURL,
	}
}

type LikeResponse struct {
	Liked bool `json:"liked"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	filter := models.FeedFilter{
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		AuthorID: strings.TrimSpace(r.URL.Query().Get("author_id")),
	}
	h.writeFeedPage(w, r, filter)
}

func (h *Handlers) writeFeedPage(w http.ResponseWriter, r *http.Request, filter models.FeedFilter) {
	page, err := queryInt(r, "page")
	if err != nil {
		WriteError(w, "page must be an integer", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		WriteError(w, "limit must be an integer", http.StatusBadRequest)
		return
	}

	feed, err := h.FeedService.LoadPage(r.Context(), filter, page, limit, viewer(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, PostsGetResponse{
		Posts: feed.Posts,
		Pagination: PaginationResponse{
			Page:    feed.Page,
			Limit:   feed.Limit,
			HasMore: feed.HasMore,
		},
	}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["id"], viewer(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req.input())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), mux.Vars(r)["id"], userID, req.input())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.PostService.DeletePost(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted successfully"}, http.StatusOK)
}

func (h *Handlers) UploadPostImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	file, header, ok := h.formFile(w, r, "image")
	if !ok {
		return
	}
	defer file.Close()

	post, err := h.PostService.AttachImage(r.Context(), mux.Vars(r)["id"], userID, header.Filename, file, header.Size)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.EngagementService.Toggle(r.Context(), mux.Vars(r)["id"], userID, models.MarkLike)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, LikeResponse{Liked: res.Active}, http.StatusOK)
}

func (h *Handlers) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.EngagementService.Toggle(r.Context(), mux.Vars(r)["id"], userID, models.MarkBookmark)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, BookmarkResponse{Bookmarked: res.Active}, http.StatusOK)
}
