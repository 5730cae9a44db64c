// internal/app/features/materials/routes.go
package materials

import "github.com/go-chi/chi/v5"

// CatalogueRoutes returns the catalogue-scoped material endpoints. Mounted
// under /api/materials.
func CatalogueRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{catalogueID}", h.ListByCatalogue)
	r.Post("/{catalogueID}", h.Add)
	return r
}

// ItemRoutes returns the per-material endpoints. Mounted under
// /api/material.
func ItemRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
