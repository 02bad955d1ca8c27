package handler

import (
	"context"
	"net/http"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// MailLogLister reads back recorded dispatch attempts.
type MailLogLister interface {
	ListByTenant(ctx context.Context, tenantTag string) ([]domain.MailLogEntry, error)
}

// MailLogHandler exposes the dispatch log for operator diagnosis. Entries
// carry recipient and subject but never a rendered body or credentials.
type MailLogHandler struct {
	logs      MailLogLister
	tenantTag string
}

func NewMailLogHandler(logs MailLogLister, tenantTag string) *MailLogHandler {
	return &MailLogHandler{logs: logs, tenantTag: tenantTag}
}

func (h *MailLogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.logs.ListByTenant(r.Context(), h.tenantTag)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
