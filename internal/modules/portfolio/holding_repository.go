// Package portfolio provides the persisted holdings store.
package portfolio

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/stockfolio/internal/domain"
)

// holdingsColumns is the list of columns for the holdings table.
// Column order must match the scan calls below.
const holdingsColumns = `id, ticker, quantity`

// InitSchema creates the holdings table if it does not exist.
// The uniqueness constraint on ticker enforces the one-holding-per-ticker
// invariant at the storage layer.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS holdings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ticker TEXT NOT NULL UNIQUE,
			quantity INTEGER NOT NULL CHECK(quantity >= 0)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create holdings table: %w", err)
	}
	return nil
}

// HoldingRepository handles holdings database operations
type HoldingRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *sql.DB, log zerolog.Logger) *HoldingRepository {
	return &HoldingRepository{
		db:  db,
		log: log.With().Str("repo", "holding").Logger(),
	}
}

// List returns all holdings ordered by ticker
func (r *HoldingRepository) List() ([]domain.Holding, error) {
	rows, err := r.db.Query("SELECT " + holdingsColumns + " FROM holdings ORDER BY ticker ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	holdings := make([]domain.Holding, 0)
	for rows.Next() {
		var h domain.Holding
		if err := rows.Scan(&h.ID, &h.Ticker, &h.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}

	return holdings, nil
}

// GetByTicker retrieves the holding for a ticker, or nil when none exists
func (r *HoldingRepository) GetByTicker(ticker string) (*domain.Holding, error) {
	query := "SELECT " + holdingsColumns + " FROM holdings WHERE ticker = ?"

	var h domain.Holding
	err := r.db.QueryRow(query, normalizeTicker(ticker)).Scan(&h.ID, &h.Ticker, &h.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding by ticker: %w", err)
	}

	return &h, nil
}

// BuyTx adds quantity to a ticker's holding inside the given transaction,
// creating the holding when none exists. The single conditional write keeps
// concurrent buys on the same ticker from losing updates.
func (r *HoldingRepository) BuyTx(tx *sql.Tx, ticker string, quantity int64) error {
	query := `
		INSERT INTO holdings (ticker, quantity)
		VALUES (?, ?)
		ON CONFLICT(ticker) DO UPDATE SET quantity = quantity + excluded.quantity
	`

	if _, err := tx.Exec(query, normalizeTicker(ticker), quantity); err != nil {
		return fmt.Errorf("failed to apply buy: %w", err)
	}

	return nil
}

// SellTx subtracts quantity from a ticker's holding inside the given
// transaction. The guard is part of the UPDATE statement: when the held
// quantity is smaller than requested (or no holding exists) no row changes
// and false is returned. A holding sold down to exactly zero is deleted.
func (r *HoldingRepository) SellTx(tx *sql.Tx, ticker string, quantity int64) (bool, error) {
	normalized := normalizeTicker(ticker)

	res, err := tx.Exec(
		"UPDATE holdings SET quantity = quantity - ? WHERE ticker = ? AND quantity >= ?",
		quantity, normalized, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("failed to apply sell: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.Exec("DELETE FROM holdings WHERE ticker = ? AND quantity = 0", normalized); err != nil {
		return false, fmt.Errorf("failed to delete exhausted holding: %w", err)
	}

	return true, nil
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
