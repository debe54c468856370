package information

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers information routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/informations", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/", h.Update)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Delete)
		})
	})
}
