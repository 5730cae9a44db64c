// Package catalogues exposes the catalogue CRUD endpoints.
package catalogues

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/features/shared"
	catalogueservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/catalogues"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the catalogue endpoints.
type Handler struct {
	Service *catalogueservice.Service
	Log     *zap.Logger
}

func NewHandler(service *catalogueservice.Service, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Log: logger}
}

// List handles GET /api/catalogue.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	catalogues, err := h.Service.GetAll(ctx)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, catalogues)
}

// Create handles POST /api/catalogue. The body may carry an id to create
// the catalogue at; when absent one is generated.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var body struct {
		ID string `json:"id"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			shared.WriteError(w, apperr.InvalidArgument("Invalid request body"))
			return
		}
	}

	catalogue, err := h.Service.Create(ctx, body.ID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, catalogue)
}

// Get handles GET /api/catalogue/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	catalogue, err := h.Service.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, catalogue)
}

// Delete handles DELETE /api/catalogue/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteMessage(w, "Catalogue deleted successfully")
}
