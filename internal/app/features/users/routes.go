// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the user listing endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/by-role", h.ByRole) // this will be mounted under /users
	return r
}
