// Package trading executes buy and sell orders against the holdings store
// and keeps a ledger of every executed trade.
package trading

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/aristath/stockfolio/internal/domain"
	"github.com/rs/zerolog"
)

const tradeColumns = "id, order_id, ticker, side, quantity, executed_at"

// InitSchema creates the trades ledger table if it doesn't exist
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id TEXT NOT NULL UNIQUE,
		ticker TEXT NOT NULL,
		side TEXT NOT NULL CHECK(side IN ('buy', 'sell')),
		quantity INTEGER NOT NULL CHECK(quantity > 0),
		executed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_trades_ticker ON trades(ticker);
	CREATE INDEX IF NOT EXISTS idx_trades_executed_at ON trades(executed_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create trades schema: %w", err)
	}

	return nil
}

// TradeRepository persists the executed-trade ledger
type TradeRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *sql.DB, log zerolog.Logger) *TradeRepository {
	return &TradeRepository{
		db:  db,
		log: log.With().Str("repo", "trades").Logger(),
	}
}

// RecordTx appends an executed trade to the ledger inside the caller's transaction.
func (r *TradeRepository) RecordTx(tx *sql.Tx, trade *domain.TradeRecord) error {
	result, err := tx.Exec(`
		INSERT INTO trades (order_id, ticker, side, quantity, executed_at)
		VALUES (?, ?, ?, ?, ?)
	`, trade.OrderID, trade.Ticker, trade.Side, trade.Quantity, trade.ExecutedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record trade: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get trade id: %w", err)
	}
	trade.ID = id

	return nil
}

// ListRecent returns the most recently executed trades, newest first.
func (r *TradeRepository) ListRecent(limit int) ([]domain.TradeRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT %s FROM trades
		ORDER BY executed_at DESC, id DESC
		LIMIT ?
	`, tradeColumns), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	trades := make([]domain.TradeRecord, 0)
	for rows.Next() {
		var trade domain.TradeRecord
		var executedAt time.Time
		if err := rows.Scan(&trade.ID, &trade.OrderID, &trade.Ticker, &trade.Side, &trade.Quantity, &executedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trade.ExecutedAt = executedAt.UTC()
		trades = append(trades, trade)
	}

	return trades, rows.Err()
}
