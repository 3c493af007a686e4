package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/rhenlumbo/portfolio-backend/internal/model/chat"
	aiservice "github.com/rhenlumbo/portfolio-backend/internal/service/ai"
	"github.com/rhenlumbo/portfolio-backend/pkg/utils"
)

// Handler serves the chat endpoint.
type Handler struct {
	ai  *aiservice.Service // nil when the API credential is missing
	log *logrus.Logger
}

// New creates the chat handler. Pass a nil service when the generator could
// not be configured; requests then fail with a configuration error instead
// of crashing at startup.
func New(ai *aiservice.Service, log *logrus.Logger) *Handler {
	return &Handler{ai: ai, log: log}
}

// RegisterRoutes mounts the chat routes on the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat", h.handleLiveness)
	r.Post("/chat", h.handleChat)
}

// handleLiveness answers browser GETs so the route does not show "Not Found".
func (h *Handler) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": "Chat route is alive. Use POST.",
	})
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string      `json:"message"`
		History []chat.Turn `json:"history"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Message is required.")
		return
	}

	if h.ai == nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server misconfigured: GOOGLE_API_KEY is missing")
		return
	}

	history := chat.SanitizeHistory(payload.History)

	reply, err := h.ai.Answer(r.Context(), history, payload.Message)
	if err != nil {
		h.log.WithError(err).Error("chat generation failed")
		utils.RespondError(w, http.StatusInternalServerError, "Chat failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
