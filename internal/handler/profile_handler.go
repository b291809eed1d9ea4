package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"blogsphere/internal/models"
)

type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=1000"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.ProfileService.GetProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	profile, err := h.ProfileService.UpdateProfile(r.Context(), mux.Vars(r)["id"], userID, models.ProfileUpdate{
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	file, header, ok := h.formFile(w, r, "avatar")
	if !ok {
		return
	}
	defer file.Close()

	profile, err := h.ProfileService.UploadAvatar(r.Context(), mux.Vars(r)["id"], userID, header.Filename, file, header.Size)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

// GetProfilePosts is the feed scoped to one author.
func (h *Handlers) GetProfilePosts(w http.ResponseWriter, r *http.Request) {
	h.writeFeedPage(w, r, models.FeedFilter{AuthorID: mux.Vars(r)["id"]})
}
