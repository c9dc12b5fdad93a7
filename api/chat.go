package api

import (
	"encoding/json"
	"net/http"

	"github.com/gigwork/jobchat/internal/chat"
	"github.com/gigwork/jobchat/pkg/models"
)

// ChatHandler exposes the routing state machine as one POST endpoint.
type ChatHandler struct {
	router *chat.Router
}

func NewChatHandler(router *chat.Router) *ChatHandler {
	return &ChatHandler{router: router}
}

type chatRequest struct {
	UserID              string           `json:"user_id,omitempty"`
	Text                string           `json:"text"`
	Condition           models.Condition `json:"condition"`
	Search              bool             `json:"search"`
	SearchInResults     bool             `json:"search_in_results,omitempty"`
	RequesterID         string           `json:"requester_id,omitempty"`
	SimilarityThreshold float64          `json:"similarity_threshold,omitempty"`
}

// Chat routes one turn. The response is always a well-formed outcome; clients
// only see non-200 for malformed JSON.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	// free text always doubles as the requirements field so the condition
	// card shown to the user reflects what was typed
	if req.Text != "" {
		req.Condition.Requirements = models.Flex(req.Text)
	}

	turn := &models.Turn{
		UserID:              req.UserID,
		Text:                req.Text,
		Condition:           req.Condition,
		Search:              req.Search,
		SearchInResults:     req.SearchInResults,
		RequesterID:         req.RequesterID,
		SimilarityThreshold: req.SimilarityThreshold,
	}

	out := h.router.Run(r.Context(), turn)
	writeJSON(w, out, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write json response failed", "err", err)
	}
}
