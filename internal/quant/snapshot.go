package quant

import "StockLens/internal/model"

const (
	rsiPeriod       = 14
	bollingerPeriod = 20
	bollingerWidth  = 2
	avgVolumeWindow = 15
)

// Compute derives the full indicator snapshot for a price history. Metrics
// the series is too short for are left nil rather than zero-filled.
func Compute(h *model.PriceHistory) *model.IndicatorSet {
	closes := h.Closes
	ind := &model.IndicatorSet{}

	if v, err := SMA(closes, 5); err == nil {
		ind.MA5 = &v
	}
	if v, err := SMA(closes, 20); err == nil {
		ind.MA20 = &v
	}
	if v, err := SMA(closes, 60); err == nil {
		ind.MA60 = &v
	}
	if v, err := RSI(closes, rsiPeriod); err == nil {
		ind.RSI14 = &v
	}
	if line, sig, hist, err := MACDHistogram(closes); err == nil {
		ind.MACD = &line
		ind.MACDSignal = &sig
		ind.MACDHist = &hist
	}
	if upper, middle, lower, err := Bollinger(closes, bollingerPeriod, bollingerWidth); err == nil {
		ind.BBUpper = &upper
		ind.BBMiddle = &middle
		ind.BBLower = &lower
	}

	returns := DailyReturns(closes)
	if v, err := Volatility(returns); err == nil {
		ind.Volatility = &v
	}
	if v, err := MaxDrawdown(closes); err == nil {
		ind.MaxDrawdown = &v
	}
	if v, err := SharpeRatio(returns, DefaultRiskFreeRate); err == nil {
		ind.Sharpe = &v
	}

	if len(h.Volumes) > 0 {
		window := h.Volumes
		if len(window) > avgVolumeWindow {
			window = window[len(window)-avgVolumeWindow:]
		}
		sum := 0.0
		for _, v := range window {
			sum += v
		}
		avg := sum / float64(len(window))
		ind.AvgVolume = &avg
	}

	return ind
}
