package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"blogsphere/internal/config"
	"blogsphere/internal/identity"
	"blogsphere/internal/service"
)

type Handlers struct {
	CommentService    service.CommentService
	FeedService       service.FeedService
	EngagementService service.EngagementService
	PostService       service.PostService
	ProfileService    service.ProfileService
	SuggestService    service.SuggestService
	TablesService     service.TablesService
	Cfg               *config.Config
	Log               *zap.Logger
	Validate          *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		CommentService:    services.Comment,
		FeedService:       services.Feed,
		EngagementService: services.Engagement,
		PostService:       services.Post,
		ProfileService:    services.Profile,
		SuggestService:    services.Suggest,
		TablesService:     services.Tables,
		Cfg:               cfg,
		Log:               log,
		Validate:          validator.New(),
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

// decode reads a JSON body into dst and runs struct validation.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	if err := h.Validate.Struct(dst); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

// currentUser returns the id set by the auth middleware or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func viewer(r *http.Request) string {
	userID, _ := identity.UserIDFromContext(r.Context())
	return userID
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
