// internal/app/features/registration/routes.go
package registration

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the registration endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/new", h.NewAdmin) // this will be mounted under /admin
	return r
}
