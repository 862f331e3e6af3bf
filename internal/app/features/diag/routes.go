// internal/app/features/diag/routes.go
package diag

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the diagnostics endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve) // mounted under /test
	return r
}
