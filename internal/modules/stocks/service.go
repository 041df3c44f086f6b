package stocks

import (
	"fmt"

	"github.com/aristath/stockfolio/internal/domain"
	"github.com/aristath/stockfolio/internal/universe"
	"github.com/rs/zerolog"
)

// historyLookbackDays is the window served with every stock-info response.
const historyLookbackDays = 30

// MarketDataClient fetches live quotes and daily price history
type MarketDataClient interface {
	GetQuote(symbol string) (*domain.Quote, error)
	GetDailyHistory(symbol string, lookbackDays int) ([]domain.PricePoint, error)
}

// StockInfo is the composed quote-plus-history result for one symbol
type StockInfo struct {
	Symbol         string
	Name           string
	Price          float64
	HistoricalData []domain.PricePoint
}

// Service resolves a requested ticker against the symbol universe and
// composes the quote and 30-day history for it.
type Service struct {
	universe *universe.Universe
	client   MarketDataClient
	cache    *QuoteCache
	log      zerolog.Logger
}

// NewService creates a new stocks service. cache may be nil to disable
// quote caching.
func NewService(universe *universe.Universe, client MarketDataClient, cache *QuoteCache, log zerolog.Logger) *Service {
	return &Service{
		universe: universe,
		client:   client,
		cache:    cache,
		log:      log.With().Str("service", "stocks").Logger(),
	}
}

// Resolve maps a requested ticker to a universe member, fuzzy-correcting
// typos. Returns domain.ErrUnknownSymbol when nothing matches.
func (s *Service) Resolve(ticker string) (string, error) {
	resolved, ok := s.universe.Resolve(ticker)
	if !ok {
		return "", &domain.UnknownSymbolError{Symbol: ticker}
	}
	return resolved, nil
}

// GetStockInfo returns the current quote and 30-day daily closes for ticker.
// The ticker must already be resolved to a universe member.
func (s *Service) GetStockInfo(symbol string) (*StockInfo, error) {
	quote, err := s.getQuote(symbol)
	if err != nil {
		return nil, err
	}

	history, err := s.client.GetDailyHistory(symbol, historyLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", symbol, err)
	}

	return &StockInfo{
		Symbol:         quote.Symbol,
		Name:           quote.Name,
		Price:          quote.Price,
		HistoricalData: history,
	}, nil
}

// GetHistory returns the daily closes used by the indicator endpoint.
func (s *Service) GetHistory(symbol string, lookbackDays int) ([]domain.PricePoint, error) {
	return s.client.GetDailyHistory(symbol, lookbackDays)
}

func (s *Service) getQuote(symbol string) (*domain.Quote, error) {
	if s.cache != nil {
		if quote, ok := s.cache.Get(symbol); ok {
			return quote, nil
		}
	}

	quote, err := s.client.GetQuote(symbol)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Put(symbol, quote)
	}

	return quote, nil
}
