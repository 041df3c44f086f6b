package yahoo

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/stockfolio/internal/domain"
)

func quoteBody(symbol, name string, fields map[string]float64) string {
	body := fmt.Sprintf(`{"quoteResponse":{"result":[{"symbol":%q,"longName":%q`, symbol, name)
	for k, v := range fields {
		body += fmt.Sprintf(`,%q:%v`, k, v)
	}
	return body + `}],"error":null}}`
}

func TestGetQuote_PrefersCurrentPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, quoteBody("AAPL", "Apple Inc.", map[string]float64{
			"currentPrice":       150.25,
			"regularMarketPrice": 149.00,
		}))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	quote, err := c.GetQuote("AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, "Apple Inc.", quote.Name)
	assert.Equal(t, 150.25, quote.Price)
}

func TestGetQuote_FallsBackToRegularMarketPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, quoteBody("MSFT", "Microsoft Corporation", map[string]float64{
			"regularMarketPrice": 310.5,
		}))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	quote, err := c.GetQuote("MSFT")
	require.NoError(t, err)

	assert.Equal(t, 310.5, quote.Price)
}

func TestGetQuote_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "upstream blew up", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, quoteBody("NVDA", "NVIDIA Corporation", map[string]float64{
			"currentPrice": 475.1,
		}))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	quote, err := c.GetQuote("NVDA")
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 475.1, quote.Price)
}

func TestGetQuote_UnavailableAfterExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	_, err := c.GetQuote("AAPL")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDataUnavailable))
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetQuote_MissingSymbolFieldIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"longName":"Mystery Corp","currentPrice":10}],"error":null}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	_, err := c.GetQuote("AAPL")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDataUnavailable))
}

func chartBody(timestamps []int64, closes []float64) string {
	ts := ""
	for i, v := range timestamps {
		if i > 0 {
			ts += ","
		}
		ts += fmt.Sprintf("%d", v)
	}
	cl := ""
	for i, v := range closes {
		if i > 0 {
			cl += ","
		}
		cl += fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"close":[%s]}]}}],"error":null}}`, ts, cl)
}

func TestGetDailyHistory_ReturnsOrderedCloses(t *testing.T) {
	day := int64(86400)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Unix()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartBody(
			[]int64{base, base + day, base + 2*day},
			[]float64{101.5, 0, 103.25}, // zero close is a missing bar
		))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	points, err := c.GetDailyHistory("AAPL", 30)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 101.5, points[0].Close)
	assert.Equal(t, 103.25, points[1].Close)
	assert.True(t, points[0].Date.Before(points[1].Date))
}

func TestGetDailyHistory_FallsBackToMonthRange(t *testing.T) {
	var rangeQueries atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("range") == "1mo" {
			rangeQueries.Add(1)
			fmt.Fprint(w, chartBody([]int64{1756425600}, []float64{99.9}))
			return
		}
		// Date-range query fails, forcing the coarser fallback
		http.Error(w, "bad range", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	points, err := c.GetDailyHistory("AAPL", 30)
	require.NoError(t, err)

	assert.Equal(t, int32(1), rangeQueries.Load())
	require.Len(t, points, 1)
	assert.Equal(t, 99.9, points[0].Close)
}

func TestGetDailyHistory_EmptyWindowIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, time.Millisecond, zerolog.Nop())
	points, err := c.GetDailyHistory("AAPL", 30)

	require.NoError(t, err)
	assert.Empty(t, points)
}
