// Package yahoo provides the Yahoo Finance market data client.
package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/stockfolio/internal/domain"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"

	// userAgent mimics a browser; Yahoo rejects default Go user agents
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second
)

// Client is a Yahoo Finance API client
type Client struct {
	client     *http.Client
	baseURL    string
	maxRetries int
	baseDelay  time.Duration
	log        zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    defaultBaseURL,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
		log:        log.With().Str("client", "yahoo").Logger(),
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint.
// Used by tests with an httptest server; baseDelay shortens backoff sleeps.
func NewClientWithBaseURL(baseURL string, baseDelay time.Duration, log zerolog.Logger) *Client {
	c := NewClient(log)
	c.baseURL = baseURL
	c.baseDelay = baseDelay
	return c
}

// yahooQuoteResponse represents the response from the Yahoo Finance quote API
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// GetQuote retrieves the current name and price for a symbol.
// Price precedence is currentPrice, then regularMarketPrice; this order is
// the externally observable pricing rule and must not change.
// Retries with exponential backoff, then reports domain.ErrDataUnavailable.
func (c *Client) GetQuote(symbol string) (*domain.Quote, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			waitTime := c.baseDelay * time.Duration(1<<uint(attempt-1))
			c.log.Warn().
				Err(lastErr).
				Str("symbol", symbol).
				Int("attempt", attempt+1).
				Dur("wait", waitTime).
				Msg("Quote fetch failed, retrying")
			time.Sleep(waitTime)
		}

		info, err := c.getQuoteInfo(symbol)
		if err != nil {
			lastErr = err
			continue
		}

		// A response without a symbol field is not a usable quote
		resolvedSymbol := getString(info, "symbol", "")
		if resolvedSymbol == "" {
			lastErr = fmt.Errorf("response for %s lacks a symbol field", symbol)
			continue
		}

		price := getFloat64(info, "currentPrice")
		if price == nil {
			price = getFloat64(info, "regularMarketPrice")
		}
		if price == nil {
			lastErr = fmt.Errorf("response for %s lacks a price field", symbol)
			continue
		}

		name := getString(info, "longName", "")
		if name == "" {
			name = getString(info, "shortName", "N/A")
		}

		return &domain.Quote{
			Symbol: resolvedSymbol,
			Name:   name,
			Price:  *price,
		}, nil
	}

	return nil, fmt.Errorf("quote for %s failed after %d attempts: %v: %w",
		symbol, c.maxRetries, lastErr, domain.ErrDataUnavailable)
}

// GetDailyHistory retrieves daily closing prices for the trailing lookback
// window. When the date-range query fails, it falls back to a coarser
// one-month range query; the fallback is logged, not surfaced. A window with
// no data yields an empty slice, not an error.
func (c *Client) GetDailyHistory(symbol string, lookbackDays int) ([]domain.PricePoint, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -lookbackDays)

	params := url.Values{}
	params.Add("interval", "1d")
	params.Add("period1", strconv.FormatInt(start.Unix(), 10))
	params.Add("period2", strconv.FormatInt(end.Unix(), 10))

	points, err := c.fetchChart(symbol, params)
	if err != nil {
		c.log.Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("Date-range history fetch failed, falling back to 1mo range")

		fallback := url.Values{}
		fallback.Add("interval", "1d")
		fallback.Add("range", "1mo")

		points, err = c.fetchChart(symbol, fallback)
		if err != nil {
			return nil, fmt.Errorf("history for %s unavailable: %w", symbol, err)
		}
	}

	return points, nil
}

// getQuoteInfo fetches quote information from the Yahoo Finance quote API
func (c *Client) getQuoteInfo(symbol string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("symbols", symbol)
	params.Add("fields", "symbol,longName,shortName,currentPrice,regularMarketPrice")

	reqURL := c.baseURL + "/v7/finance/quote?" + params.Encode()

	body, err := c.get(reqURL)
	if err != nil {
		return nil, err
	}

	var result yahooQuoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse quote response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("quote API error: %v", result.QuoteResponse.Error)
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}

	return result.QuoteResponse.Result[0], nil
}

// fetchChart runs one chart API query and extracts daily close prices
func (c *Client) fetchChart(symbol string, params url.Values) ([]domain.PricePoint, error) {
	reqURL := c.baseURL + "/v8/finance/chart/" + url.PathEscape(symbol) + "?" + params.Encode()

	body, err := c.get(reqURL)
	if err != nil {
		return nil, err
	}

	var result struct {
		Chart struct {
			Result []struct {
				Timestamp  []int64 `json:"timestamp"`
				Indicators struct {
					Quote []struct {
						Close []float64 `json:"close"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
			Error interface{} `json:"error"`
		} `json:"chart"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse chart response: %w", err)
	}

	if result.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error: %v", result.Chart.Error)
	}

	if len(result.Chart.Result) == 0 || len(result.Chart.Result[0].Indicators.Quote) == 0 {
		c.log.Warn().Str("symbol", symbol).Msg("No historical data returned")
		return []domain.PricePoint{}, nil
	}

	chartData := result.Chart.Result[0]
	closes := chartData.Indicators.Quote[0].Close

	points := make([]domain.PricePoint, 0, len(chartData.Timestamp))
	for i, ts := range chartData.Timestamp {
		if i >= len(closes) {
			break
		}
		// Yahoo encodes missing bars as zero closes
		if closes[i] == 0 {
			continue
		}
		points = append(points, domain.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: closes[i],
		})
	}

	return points, nil
}

// get performs one HTTP GET with browser headers and returns the body
func (c *Client) get(reqURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Helper functions to safely extract values from quote maps

func getFloat64(m map[string]interface{}, key string) *float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func getString(m map[string]interface{}, key string, defaultVal string) string {
	if val, ok := m[key]; ok && val != nil {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultVal
}
