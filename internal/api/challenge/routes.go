package challenge

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers challenge routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/challenges", func(r chi.Router) {
		r.Post("/", h.CreateChallenge)
		r.Get("/", h.ListChallenges)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetChallenge)
			r.Put("/", h.UpdateChallenge)
			r.Get("/export", h.ExportChallenge)
		})
	})
}
