package stocks

import (
	"github.com/aristath/stockfolio/internal/domain"
	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/stat"
)

const (
	smaPeriod = 20
	rsiPeriod = 14
)

// Indicators summarizes the 30-day close series for a symbol
type Indicators struct {
	Symbol          string   `json:"symbol"`
	Samples         int      `json:"samples"`
	Mean            float64  `json:"mean"`
	StdDev          float64  `json:"std_dev"`
	SMA20           *float64 `json:"sma_20"`
	RSI14           *float64 `json:"rsi_14"`
	LastClose       float64  `json:"last_close"`
	FirstClose      float64  `json:"first_close"`
	PeriodReturnPct float64  `json:"period_return_pct"`
}

// ComputeIndicators derives summary statistics and technical indicators from
// a daily close series. SMA and RSI are nil when the series is shorter than
// their periods require.
func ComputeIndicators(symbol string, history []domain.PricePoint) *Indicators {
	closes := make([]float64, 0, len(history))
	for _, point := range history {
		closes = append(closes, point.Close)
	}

	ind := &Indicators{
		Symbol:  symbol,
		Samples: len(closes),
	}
	if len(closes) == 0 {
		return ind
	}

	ind.FirstClose = closes[0]
	ind.LastClose = closes[len(closes)-1]
	if ind.FirstClose != 0 {
		ind.PeriodReturnPct = (ind.LastClose - ind.FirstClose) / ind.FirstClose * 100
	}
	ind.Mean = stat.Mean(closes, nil)
	if len(closes) > 1 {
		ind.StdDev = stat.StdDev(closes, nil)
	}

	if len(closes) >= smaPeriod {
		sma := talib.Sma(closes, smaPeriod)
		if last := sma[len(sma)-1]; !isNaN(last) {
			ind.SMA20 = &last
		}
	}

	if len(closes) >= rsiPeriod+1 {
		rsi := talib.Rsi(closes, rsiPeriod)
		if last := rsi[len(rsi)-1]; !isNaN(last) {
			ind.RSI14 = &last
		}
	}

	return ind
}

func isNaN(f float64) bool {
	return f != f
}
