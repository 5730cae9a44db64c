// internal/app/features/catalogues/routes.go
package catalogues

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the catalogue endpoints. Mounted under
// /api/catalogue.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
	return r
}
