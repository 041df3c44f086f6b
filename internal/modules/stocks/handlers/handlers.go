// Package handlers provides HTTP handlers for stock quote lookups.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aristath/stockfolio/internal/domain"
	"github.com/aristath/stockfolio/internal/modules/stocks"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles stock HTTP requests
type Handler struct {
	service *stocks.Service
	log     zerolog.Logger
}

// NewHandler creates a new stocks handler
func NewHandler(service *stocks.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "stocks").Logger(),
	}
}

// HandleGetStock returns the current quote and 30-day history for a ticker.
// Typos are corrected against the symbol universe before fetching.
func (h *Handler) HandleGetStock(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	symbol, err := h.service.Resolve(ticker)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid ticker: %s", ticker))
		return
	}

	info, err := h.service.GetStockInfo(symbol)
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			h.log.Warn().Str("symbol", symbol).Msg("No quote data available")
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("Failed to retrieve data for ticker: %s", symbol))
			return
		}
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to retrieve stock info")
		h.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve stock info for %s", symbol))
		return
	}

	historicalData := make([]map[string]interface{}, 0, len(info.HistoricalData))
	for _, point := range info.HistoricalData {
		historicalData = append(historicalData, map[string]interface{}{
			"date":  point.Date.Format("2006-01-02"),
			"close": point.Close,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":         info.Symbol,
		"name":           info.Name,
		"price":          info.Price,
		"historicalData": historicalData,
	})
}

// HandleGetIndicators returns summary statistics and technical indicators
// derived from the ticker's 30-day close series.
func (h *Handler) HandleGetIndicators(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	symbol, err := h.service.Resolve(ticker)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid ticker: %s", ticker))
		return
	}

	history, err := h.service.GetHistory(symbol, 30)
	if err != nil {
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to retrieve history")
		h.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve stock info for %s", symbol))
		return
	}
	if len(history) == 0 {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("Failed to retrieve data for ticker: %s", symbol))
		return
	}

	h.writeJSON(w, http.StatusOK, stocks.ComputeIndicators(symbol, history))
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
