package question

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RegisterRoutes registers question routes. Generation gets its own, longer
// timeout; everything else uses defaultTimeout.
func RegisterRoutes(r chi.Router, h *Handler, defaultTimeout, generateTimeout time.Duration) {
	r.Route("/questions", func(r chi.Router) {
		r.With(chimiddleware.Timeout(generateTimeout)).Post("/", h.Generate)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(defaultTimeout))

			r.Get("/", h.List)
			r.Get("/export", h.Export)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Get)
				r.Patch("/", h.Review)
				r.Delete("/", h.Delete)
			})
		})
	})
}
