// Package images exposes the image streaming endpoint.
package images

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/features/shared"
	imageservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/images"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the image endpoints.
type Handler struct {
	Service *imageservice.Service
	Log     *zap.Logger
}

func NewHandler(service *imageservice.Service, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Log: logger}
}

// Get handles GET /api/image/{name}: streams the image body with its
// content type and the long-lived cache directive.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	image, err := h.Service.Get(ctx, chi.URLParam(r, "name"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	defer image.Stream.Close()

	w.Header().Set("Content-Type", image.ContentType)
	w.Header().Set("Cache-Control", image.CacheControl)
	if _, err := io.Copy(w, image.Stream); err != nil {
		// Headers are already out; all that is left is to log.
		h.Log.Warn("image stream interrupted", zap.String("name", chi.URLParam(r, "name")), zap.Error(err))
	}
}
