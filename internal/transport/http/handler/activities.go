package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ManyRagDev/brincar-educando-2/internal/application/activities"
	"github.com/ManyRagDev/brincar-educando-2/internal/application/children"
	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
	"github.com/ManyRagDev/brincar-educando-2/internal/transport/http/middleware"
)

// ActivityHandler handles the public activity library and the per-child
// suggestion block.
type ActivityHandler struct {
	svc      activities.Service
	children children.Service
}

func NewActivityHandler(svc activities.Service, childSvc children.Service) *ActivityHandler {
	return &ActivityHandler{svc: svc, children: childSvc}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ActivityFilter{
		Category: r.URL.Query().Get("category"),
		Energy:   r.URL.Query().Get("energy"),
	}
	if raw := r.URL.Query().Get("age_months"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			writeError(w, http.StatusBadRequest, "invalid age_months")
			return
		}
		filter.AgeMonths = &age
	}
	list, err := h.svc.List(r.Context(), filter)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ActivityHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Suggestions builds the dashboard block for one child. Age is derived from
// the child's birthdate so the picks track the child growing up.
func (h *ActivityHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	child, err := h.children.Get(r.Context(), claims.UserID(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	age := child.AgeInMonths(time.Now())
	sug, err := h.svc.Suggest(r.Context(), &age)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sug)
}
