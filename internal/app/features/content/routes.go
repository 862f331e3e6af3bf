// internal/app/features/content/routes.go
package content

import "github.com/go-chi/chi/v5"

// Register attaches the content list endpoints to the /api router.
func Register(r chi.Router, h *Handler) {
	r.Get("/programs", h.ListPrograms)
	r.Get("/stories", h.ListStories)
	r.Get("/posts", h.ListPosts)
}
