package help

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers help request routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/help", h.CreateHelpRequest)
}
