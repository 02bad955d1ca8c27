package handler

import (
	"encoding/json"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"

	s3infra "github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/s3"
	"github.com/ManyRagDev/brincar-educando-2/internal/pkg/id"
	"github.com/ManyRagDev/brincar-educando-2/internal/transport/http/middleware"
)

const presignTTL = 15 * time.Minute

// MediaHandler handles avatar and diary photo storage. Uploads are base64
// JSON bodies; downloads are redirected through presigned S3 URLs so photos
// never stream through the API.
type MediaHandler struct {
	store *s3infra.Store
}

func NewMediaHandler(store *s3infra.Store) *MediaHandler { return &MediaHandler{store: store} }

// UploadEnvelope is the response for a stored media object.
type UploadEnvelope struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (h *MediaHandler) UploadBase64(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		FileName string `json:"file_name"`
		Base64   string `json:"base64"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.FileName == "" || body.Base64 == "" {
		writeError(w, http.StatusBadRequest, "file_name and base64 are required")
		return
	}

	// Keys are namespaced per owner so one account cannot guess another's photos.
	key := path.Join(claims.UserID(), id.New()+path.Ext(body.FileName))
	if _, err := h.store.UploadBase64(r.Context(), key, body.Base64); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	url, err := h.store.PresignedURL(r.Context(), key, presignTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, UploadEnvelope{Key: key, URL: url})
}

func (h *MediaHandler) Presign(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	key := path.Join(claims.UserID(), chi.URLParam(r, "key"))
	url, err := h.store.PresignedURL(r.Context(), key, presignTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, UploadEnvelope{Key: key, URL: url})
}

func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	key := path.Join(claims.UserID(), chi.URLParam(r, "key"))
	if err := h.store.Delete(r.Context(), key); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "media deleted"})
}
