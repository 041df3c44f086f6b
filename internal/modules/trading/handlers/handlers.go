// Package handlers provides HTTP handlers for trade execution.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aristath/stockfolio/internal/domain"
	"github.com/aristath/stockfolio/internal/modules/trading"
	"github.com/aristath/stockfolio/internal/universe"
	"github.com/rs/zerolog"
)

// tradeRequest is the request schema for POST /trade. Quantity is decoded as
// a json.Number so a missing field, a non-numeric value and a non-positive
// value can each be rejected with a precise message.
type tradeRequest struct {
	Ticker   string       `json:"ticker"`
	Quantity *json.Number `json:"quantity"`
	Action   string       `json:"action"`
}

// Handler handles trade HTTP requests
type Handler struct {
	service  *trading.Service
	universe *universe.Universe
	log      zerolog.Logger
}

// NewHandler creates a new trading handler
func NewHandler(service *trading.Service, universe *universe.Universe, log zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		universe: universe,
		log:      log.With().Str("handler", "trading").Logger(),
	}
}

// HandleTrade validates and executes a buy or sell order.
//
// Validation runs in a fixed order: field presence, action, ticker
// resolution, quantity. Nothing is persisted unless every check passes and
// the engine accepts the trade.
func (h *Handler) HandleTrade(w http.ResponseWriter, r *http.Request) {
	ticker, quantity, action, err := h.parseTradeRequest(r)
	if err != nil {
		var unknownSymbol *domain.UnknownSymbolError
		switch {
		case domain.IsInvalidRequest(err):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &unknownSymbol):
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid ticker: %s", unknownSymbol.Symbol))
		default:
			h.log.Error().Err(err).Msg("Failed to parse trade request")
			h.writeError(w, http.StatusInternalServerError, "Failed to process trade")
		}
		return
	}

	trade, err := h.service.ApplyTrade(ticker, quantity, action)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientShares) {
			h.writeError(w, http.StatusBadRequest, "Insufficient shares to sell")
			return
		}
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Failed to process trade")
		h.writeError(w, http.StatusInternalServerError, "Failed to process trade")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Successfully %s %d shares of %s", action.Past(), trade.Quantity, trade.Ticker),
	})
}

// parseTradeRequest decodes and validates a trade request in order: field
// presence, action, ticker resolution, quantity.
func (h *Handler) parseTradeRequest(r *http.Request) (string, int64, domain.TradeAction, error) {
	var req tradeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		return "", 0, "", domain.NewInvalidRequest("Missing required fields")
	}

	if req.Ticker == "" || req.Quantity == nil || req.Action == "" {
		return "", 0, "", domain.NewInvalidRequest("Missing required fields")
	}

	action := domain.TradeAction(req.Action)
	if !action.Valid() {
		return "", 0, "", domain.NewInvalidRequest("Invalid action")
	}

	ticker, ok := h.universe.Resolve(req.Ticker)
	if !ok {
		return "", 0, "", &domain.UnknownSymbolError{Symbol: req.Ticker}
	}

	quantity, err := req.Quantity.Int64()
	if err != nil || quantity <= 0 {
		return "", 0, "", domain.NewInvalidRequest("Invalid quantity provided")
	}

	return ticker, quantity, action, nil
}

// HandleListTrades returns the most recent ledger entries, newest first.
func (h *Handler) HandleListTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.service.ListRecent(50)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list trades")
		h.writeError(w, http.StatusInternalServerError, "Failed to retrieve trades")
		return
	}

	h.writeJSON(w, http.StatusOK, trades)
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
