// internal/app/features/images/routes.go
package images

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the image endpoints. Mounted under
// /api/image.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{name}", h.Get)
	return r
}
