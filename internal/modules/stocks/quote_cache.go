// Package stocks serves quote and price-history lookups, with a short-lived
// cache in front of the market data client.
package stocks

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/stockfolio/internal/domain"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultQuoteTTL bounds how stale a served quote can be.
const DefaultQuoteTTL = 60 * time.Second

// InitCacheSchema creates the quote cache table if it doesn't exist
func InitCacheSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS quote_cache (
		symbol TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		fetched_at TIMESTAMP NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create quote cache schema: %w", err)
	}

	return nil
}

// QuoteCache stores recent quotes in the cache database, serialized with
// msgpack. Cache failures are never fatal: a miss is returned instead and the
// caller falls through to the live fetch.
type QuoteCache struct {
	db  *sql.DB
	ttl time.Duration
	log zerolog.Logger
}

// NewQuoteCache creates a quote cache with the given TTL
func NewQuoteCache(db *sql.DB, ttl time.Duration, log zerolog.Logger) *QuoteCache {
	if ttl <= 0 {
		ttl = DefaultQuoteTTL
	}
	return &QuoteCache{
		db:  db,
		ttl: ttl,
		log: log.With().Str("service", "quote_cache").Logger(),
	}
}

// Get returns the cached quote for symbol, or (nil, false) on a miss or an
// entry older than the TTL.
func (c *QuoteCache) Get(symbol string) (*domain.Quote, bool) {
	var payload []byte
	var fetchedAt time.Time

	err := c.db.QueryRow(`
		SELECT payload, fetched_at FROM quote_cache WHERE symbol = ?
	`, symbol).Scan(&payload, &fetchedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.log.Warn().Err(err).Str("symbol", symbol).Msg("Quote cache read failed")
		}
		return nil, false
	}

	if time.Since(fetchedAt) > c.ttl {
		return nil, false
	}

	var quote domain.Quote
	if err := msgpack.Unmarshal(payload, &quote); err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("Quote cache payload corrupt")
		return nil, false
	}

	return &quote, true
}

// Put stores a freshly fetched quote. Errors are logged and swallowed.
func (c *QuoteCache) Put(symbol string, quote *domain.Quote) {
	payload, err := msgpack.Marshal(quote)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("Quote cache encode failed")
		return
	}

	_, err = c.db.Exec(`
		INSERT INTO quote_cache (symbol, payload, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at
	`, symbol, payload, time.Now().UTC())
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("Quote cache write failed")
	}
}
