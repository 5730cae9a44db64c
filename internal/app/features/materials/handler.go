// Package materials exposes the material endpoints: the catalogue-scoped
// listing and creation surface plus per-material CRUD.
package materials

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/features/shared"
	materialservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/materials"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the material endpoints.
type Handler struct {
	Service *materialservice.Service
	Log     *zap.Logger
}

func NewHandler(service *materialservice.Service, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Log: logger}
}

// ListByCatalogue handles GET /api/materials/{catalogueID}.
func (h *Handler) ListByCatalogue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	materials, err := h.Service.GetByCatalogue(ctx, chi.URLParam(r, "catalogueID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, materials)
}

// Add handles POST /api/materials/{catalogueID}. The body is the purchase
// form; validation of the type's key set happens in the service.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		shared.WriteError(w, apperr.InvalidArgument("Invalid request body"))
		return
	}

	material, err := h.Service.Add(ctx, chi.URLParam(r, "catalogueID"), payload)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, material)
}

// Get handles GET /api/material/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	material, err := h.Service.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, material)
}

// Update handles PATCH /api/material/{id}. The body is a JSON patch that
// is shallow-merged over the stored material.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		shared.WriteError(w, apperr.InvalidArgument("Invalid request body"))
		return
	}

	material, err := h.Service.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, material)
}

// Delete handles DELETE /api/material/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteMessage(w, "Material deleted successfully")
}
