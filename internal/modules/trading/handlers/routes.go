package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all trading routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/trade", h.HandleTrade)      // Execute a buy or sell
	r.Get("/trades", h.HandleListTrades) // Executed-trade ledger
}
