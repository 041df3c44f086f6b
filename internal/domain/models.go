// Package domain provides core domain models and types.
package domain

import "time"

// TradeAction represents the direction of a trade request
type TradeAction string

const (
	ActionBuy  TradeAction = "buy"
	ActionSell TradeAction = "sell"
)

// Valid reports whether the action is one of the supported trade actions
func (a TradeAction) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

// Past returns the past-tense verb for user-facing trade messages
func (a TradeAction) Past() string {
	if a == ActionSell {
		return "sold"
	}
	return "bought"
}

// Holding represents one position in the portfolio.
// At most one Holding exists per ticker, and quantity is always positive;
// a position sold down to zero is deleted rather than kept at zero.
type Holding struct {
	ID       int64  `json:"id"`
	Ticker   string `json:"ticker"`
	Quantity int64  `json:"quantity"`
}

// Quote holds the current identifying name and price for a symbol
type Quote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// PricePoint is a single daily closing price
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// TradeRecord represents an executed trade in the ledger
type TradeRecord struct {
	ID         int64       `json:"id"`
	OrderID    string      `json:"order_id"`
	Ticker     string      `json:"ticker"`
	Side       TradeAction `json:"side"`
	Quantity   int64       `json:"quantity"`
	ExecutedAt time.Time   `json:"executed_at"`
}
