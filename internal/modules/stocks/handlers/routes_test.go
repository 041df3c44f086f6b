package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aristath/stockfolio/internal/domain"
	"github.com/aristath/stockfolio/internal/modules/stocks"
	"github.com/aristath/stockfolio/internal/universe"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketDataClient struct {
	quote    *domain.Quote
	quoteErr error
	history  []domain.PricePoint
}

func (f *fakeMarketDataClient) GetQuote(symbol string) (*domain.Quote, error) {
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	return f.quote, nil
}

func (f *fakeMarketDataClient) GetDailyHistory(symbol string, lookbackDays int) ([]domain.PricePoint, error) {
	return f.history, nil
}

func newTestRouter(t *testing.T, client *fakeMarketDataClient) chi.Router {
	t.Helper()

	service := stocks.NewService(universe.New(zerolog.Nop()), client, nil, zerolog.Nop())
	handler := NewHandler(service, zerolog.Nop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func get(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleGetStock_ReturnsQuoteWithHistory(t *testing.T) {
	router := newTestRouter(t, &fakeMarketDataClient{
		quote: &domain.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 230.1},
		history: []domain.PricePoint{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Close: 229.4},
			{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Close: 230.1},
		},
	})

	rec := get(t, router, "/stock/AAPL")
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "AAPL", result["symbol"])
	assert.Equal(t, "Apple Inc.", result["name"])
	assert.Equal(t, 230.1, result["price"])

	historical, ok := result["historicalData"].([]interface{})
	require.True(t, ok)
	require.Len(t, historical, 2)
	first, ok := historical[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2026-08-27", first["date"])
	assert.Equal(t, 229.4, first["close"])
}

func TestHandleGetStock_EmptyHistoryIsStillOK(t *testing.T) {
	router := newTestRouter(t, &fakeMarketDataClient{
		quote: &domain.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 230.1},
	})

	rec := get(t, router, "/stock/AAPL")
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	historical, ok := result["historicalData"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, historical)
}

func TestHandleGetStock_TypoIsCorrected(t *testing.T) {
	router := newTestRouter(t, &fakeMarketDataClient{
		quote: &domain.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 230.1},
	})

	rec := get(t, router, "/stock/APPL")
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "AAPL", result["symbol"])
}

func TestHandleGetStock_UnresolvableTickerIs400(t *testing.T) {
	router := newTestRouter(t, &fakeMarketDataClient{})

	rec := get(t, router, "/stock/ZZZZZZ")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Invalid ticker: ZZZZZZ", result["error"])
}

func TestHandleGetStock_UnavailableDataIs404(t *testing.T) {
	router := newTestRouter(t, &fakeMarketDataClient{quoteErr: domain.ErrDataUnavailable})

	rec := get(t, router, "/stock/AAPL")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Failed to retrieve data for ticker: AAPL", result["error"])
}

func TestHandleGetIndicators_ReturnsStatistics(t *testing.T) {
	closes := make([]domain.PricePoint, 0, 30)
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		closes = append(closes, domain.PricePoint{Date: day.AddDate(0, 0, i), Close: 100 + float64(i)})
	}
	router := newTestRouter(t, &fakeMarketDataClient{history: closes})

	rec := get(t, router, "/stock/AAPL/indicators")
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "AAPL", result["symbol"])
	assert.Equal(t, float64(30), result["samples"])
	assert.NotNil(t, result["sma_20"])
	assert.NotNil(t, result["rsi_14"])
	assert.InDelta(t, 29, result["period_return_pct"], 1e-9) // 100 -> 129
}

func TestHandleGetIndicators_NoHistoryIs404(t *testing.T) {
	router := newTestRouter(t, &fakeMarketDataClient{})

	rec := get(t, router, "/stock/AAPL/indicators")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
