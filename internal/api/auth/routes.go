package auth

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers login and logout routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})
}
