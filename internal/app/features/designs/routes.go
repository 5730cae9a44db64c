// internal/app/features/designs/routes.go
package designs

import "github.com/go-chi/chi/v5"

// CatalogueRoutes returns the catalogue-scoped design endpoints. Mounted
// under /api/designs.
func CatalogueRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{catalogueID}", h.ListByCatalogue)
	r.Post("/{catalogueID}", h.Add)
	return r
}

// ItemRoutes returns the per-design endpoints. Mounted under /api/design.
func ItemRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
