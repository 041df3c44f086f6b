package trading

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/stockfolio/internal/database"
	"github.com/aristath/stockfolio/internal/domain"
	"github.com/aristath/stockfolio/internal/modules/portfolio"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service executes validated trades atomically: the holding mutation and the
// ledger entry either both commit or neither does.
type Service struct {
	db          *sql.DB
	holdingRepo *portfolio.HoldingRepository
	tradeRepo   *TradeRepository
	log         zerolog.Logger
}

// NewService creates a new trading service
func NewService(db *sql.DB, holdingRepo *portfolio.HoldingRepository, tradeRepo *TradeRepository, log zerolog.Logger) *Service {
	return &Service{
		db:          db,
		holdingRepo: holdingRepo,
		tradeRepo:   tradeRepo,
		log:         log.With().Str("service", "trading").Logger(),
	}
}

// ApplyTrade executes a buy or sell of quantity shares of ticker.
//
// A buy creates the holding or adds to it. A sell is guarded: if the held
// quantity is smaller than the requested quantity the whole trade is rejected
// with domain.ErrInsufficientShares and nothing is sold. A sell that drains a
// holding to zero removes it entirely.
func (s *Service) ApplyTrade(ticker string, quantity int64, action domain.TradeAction) (*domain.TradeRecord, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	trade := &domain.TradeRecord{
		OrderID:    uuid.New().String(),
		Ticker:     ticker,
		Side:       action,
		Quantity:   quantity,
		ExecutedAt: time.Now().UTC(),
	}

	err := database.WithTransaction(s.db, func(tx *sql.Tx) error {
		switch action {
		case domain.ActionBuy:
			if err := s.holdingRepo.BuyTx(tx, ticker, quantity); err != nil {
				return err
			}
		case domain.ActionSell:
			ok, err := s.holdingRepo.SellTx(tx, ticker, quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrInsufficientShares
			}
		default:
			return fmt.Errorf("unsupported trade action: %s", action)
		}

		return s.tradeRepo.RecordTx(tx, trade)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", trade.OrderID).
		Str("ticker", ticker).
		Str("side", string(action)).
		Int64("quantity", quantity).
		Msg("Trade executed")

	return trade, nil
}

// ListRecent returns the most recently executed trades, newest first.
func (s *Service) ListRecent(limit int) ([]domain.TradeRecord, error) {
	return s.tradeRepo.ListRecent(limit)
}
