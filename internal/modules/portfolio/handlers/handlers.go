// Package handlers provides HTTP handlers for portfolio holdings.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aristath/stockfolio/internal/modules/portfolio"
	"github.com/rs/zerolog"
)

// Handler handles portfolio HTTP requests
type Handler struct {
	holdingRepo *portfolio.HoldingRepository
	log         zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(holdingRepo *portfolio.HoldingRepository, log zerolog.Logger) *Handler {
	return &Handler{
		holdingRepo: holdingRepo,
		log:         log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetPortfolio returns every current holding, ordered by ticker.
func (h *Handler) HandleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.holdingRepo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list holdings")
		h.writeError(w, http.StatusInternalServerError, "Failed to retrieve portfolio")
		return
	}

	result := make([]map[string]interface{}, 0, len(holdings))
	for _, holding := range holdings {
		result = append(result, map[string]interface{}{
			"id":       holding.ID,
			"ticker":   holding.Ticker,
			"quantity": holding.Quantity,
		})
	}

	h.writeJSON(w, http.StatusOK, result)
}

// Helper methods

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
