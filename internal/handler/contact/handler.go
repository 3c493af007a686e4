package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rhenlumbo/portfolio-backend/internal/service/mail"
	"github.com/rhenlumbo/portfolio-backend/pkg/utils"
)

// Handler serves the contact-form endpoint.
type Handler struct {
	sender mail.Sender // nil when the relay is not configured
	log    *logrus.Logger
}

// New creates the contact handler.
func New(sender mail.Sender, log *logrus.Logger) *Handler {
	return &Handler{sender: sender, log: log}
}

// RegisterRoutes mounts the contact route on the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleContact)
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Name == "" || payload.Email == "" || payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	if h.sender == nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server misconfigured: mail relay is not configured")
		return
	}

	// Reference ID correlates the visitor-facing response with relay logs.
	ref := uuid.NewString()

	err := h.sender.Send(r.Context(), mail.Message{
		Ref:   ref,
		Name:  payload.Name,
		Email: payload.Email,
		Body:  payload.Message,
	})
	if err != nil {
		h.log.WithError(err).WithField("ref", ref).Error("contact relay failed")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	h.log.WithFields(logrus.Fields{"ref": ref, "name": payload.Name}).Info("contact message relayed")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"ref":     ref,
	})
}
