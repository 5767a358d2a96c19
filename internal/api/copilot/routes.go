package copilot

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers copilot routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/copilot", h.Chat)
}
