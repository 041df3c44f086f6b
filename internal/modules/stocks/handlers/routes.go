package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all stock routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/stock/{ticker}", func(r chi.Router) {
		r.Get("/", h.HandleGetStock)                // Quote + 30-day history
		r.Get("/indicators", h.HandleGetIndicators) // Derived statistics
	})
}
