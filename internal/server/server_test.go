package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aristath/stockfolio/internal/config"
	"github.com/aristath/stockfolio/internal/database"
	"github.com/aristath/stockfolio/internal/domain"
	"github.com/aristath/stockfolio/internal/modules/portfolio"
	portfoliohandlers "github.com/aristath/stockfolio/internal/modules/portfolio/handlers"
	"github.com/aristath/stockfolio/internal/modules/stocks"
	stockshandlers "github.com/aristath/stockfolio/internal/modules/stocks/handlers"
	"github.com/aristath/stockfolio/internal/modules/trading"
	tradinghandlers "github.com/aristath/stockfolio/internal/modules/trading/handlers"
	"github.com/aristath/stockfolio/internal/universe"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketDataClient struct {
	quote *domain.Quote
}

func (f *fakeMarketDataClient) GetQuote(symbol string) (*domain.Quote, error) {
	if f.quote == nil {
		return nil, domain.ErrDataUnavailable
	}
	return f.quote, nil
}

func (f *fakeMarketDataClient) GetDailyHistory(symbol string, lookbackDays int) ([]domain.PricePoint, error) {
	return []domain.PricePoint{}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "portfolio.db"),
		Profile: database.ProfileStandard,
		Name:    "portfolio",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, portfolio.InitSchema(db.Conn()))
	require.NoError(t, trading.InitSchema(db.Conn()))

	log := zerolog.Nop()
	symbols := universe.New(log)
	holdingRepo := portfolio.NewHoldingRepository(db.Conn(), log)
	tradeRepo := trading.NewTradeRepository(db.Conn(), log)
	tradingService := trading.NewService(db.Conn(), holdingRepo, tradeRepo, log)
	stocksService := stocks.NewService(symbols, &fakeMarketDataClient{
		quote: &domain.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 230.1},
	}, nil, log)

	return New(Config{
		Log:               log,
		PortfolioDB:       db,
		Config:            &config.Config{Port: 0, DevMode: true},
		PortfolioHandlers: portfoliohandlers.NewHandler(holdingRepo, log),
		StocksHandlers:    stockshandlers.NewHandler(stocksService, log),
		TradingHandlers:   tradinghandlers.NewHandler(tradingService, symbols, log),
	})
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "healthy", result["status"])
	assert.Equal(t, "healthy", result["database"])
}

func TestUnknownRouteIs404(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Not found"}`, rec.Body.String())
}

func TestTradeThenPortfolioRoundTrip(t *testing.T) {
	server := newTestServer(t)

	body := `{"ticker": "AAPL", "quantity": 7, "action": "buy"}`
	req := httptest.NewRequest("POST", "/api/trade", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/api/portfolio", nil)
	rec = httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var holdings []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &holdings))
	require.Len(t, holdings, 1)
	assert.Equal(t, "AAPL", holdings[0]["ticker"])
	assert.Equal(t, float64(7), holdings[0]["quantity"])
}

func TestStockLookup(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/stock/AAPL", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "AAPL", result["symbol"])
	assert.Equal(t, 230.1, result["price"])
}

func TestSystemStatus(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/system/status", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, false, result["backup_enabled"])
}

func TestBackupUnconfiguredIs503(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/system/backup", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
