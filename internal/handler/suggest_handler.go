package handlers

import (
	"encoding/json"
	"net/http"
)

type SuggestRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handlers) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	WriteJSON(w, h.SuggestService.Suggest(req.Title, req.Content), http.StatusOK)
}
