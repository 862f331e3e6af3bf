// internal/app/features/intake/routes.go
package intake

import "github.com/go-chi/chi/v5"

// Register attaches the intake form endpoints to the /api router.
func Register(r chi.Router, h *Handler) {
	r.Post("/donations", h.CreateDonation)
	r.Post("/volunteers", h.CreateVolunteer)
	r.Post("/partners", h.CreatePartner)
	r.Post("/contact", h.CreateContact)
}
