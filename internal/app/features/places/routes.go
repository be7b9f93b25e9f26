// internal/app/features/places/routes.go
package places

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the place search proxy.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/search", h.Search) // this will be mounted under /photon
	return r
}
