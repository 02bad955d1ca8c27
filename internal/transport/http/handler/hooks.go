package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ManyRagDev/brincar-educando-2/internal/application/mailer"
	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// HookHandler receives send-email hook calls from the shared identity backend.
type HookHandler struct {
	svc mailer.Service
}

func NewHookHandler(svc mailer.Service) *HookHandler { return &HookHandler{svc: svc} }

// SendEmail is the single hook endpoint. The identity backend fans every auth
// event out to all registered hooks, so a rejection here is routine: it tells
// the backend this event belongs to a sibling application.
func (h *HookHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var payload mailer.HookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.svc.Handle(r.Context(), mailer.ParseEvent(payload))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, HookResultEnvelope{
			OK:    false,
			Error: err.Error(),
		})
		return
	}
	if outcome.Status == domain.DispatchRejected {
		writeJSON(w, http.StatusBadRequest, HookRejectionEnvelope{
			Error:   "unauthorized_app",
			Message: "event does not belong to this application",
		})
		return
	}
	writeJSON(w, http.StatusOK, HookResultEnvelope{
		OK:        true,
		MessageID: outcome.MessageID,
	})
}
