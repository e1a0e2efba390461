// Package signal maps an indicator snapshot plus current market context
// into categorical signals and a bounded composite score. All functions are
// pure; unavailable metrics simply fail their conditions.
package signal

import "StockLens/internal/model"

// Composite score conditions are worth one point each; six total.
const (
	bullishThreshold = 4
	neutralThreshold = 2
)

const volumeTrendWindow = 15

// Evaluate derives the full signal score from the indicator snapshot and
// the current price, the 52-week range and the recent volume window.
func Evaluate(price float64, ind *model.IndicatorSet, high52, low52 float64, volumes []float64) *model.SignalScore {
	s := &model.SignalScore{
		TechScore: techScore(price, ind),
	}

	switch {
	case s.TechScore >= bullishThreshold:
		s.TechSignal = model.SignalBullish
	case s.TechScore >= neutralThreshold:
		s.TechSignal = model.SignalNeutral
	default:
		s.TechSignal = model.SignalBearish
	}

	s.Position52w = position52w(price, high52, low52)
	switch {
	case s.Position52w > 70:
		s.PositionBucket = model.PositionNearHigh
	case s.Position52w < 30:
		s.PositionBucket = model.PositionNearLow
	default:
		s.PositionBucket = model.PositionNeutral
	}

	s.VolumeTrend = volumeTrend(volumes)
	s.Momentum = momentum(ind.RSI14)

	if ind.Volatility != nil {
		switch {
		case *ind.Volatility > 30:
			s.VolatilityBucket = model.RiskHigh
		case *ind.Volatility > 15:
			s.VolatilityBucket = model.RiskMedium
		default:
			s.VolatilityBucket = model.RiskLow
		}
	}
	if ind.MaxDrawdown != nil {
		switch {
		case *ind.MaxDrawdown > 20:
			s.DrawdownBucket = model.RiskHigh
		case *ind.MaxDrawdown > 10:
			s.DrawdownBucket = model.RiskMedium
		default:
			s.DrawdownBucket = model.RiskLow
		}
	}

	return s
}

// techScore awards one point per bullish condition, 0..6.
func techScore(price float64, ind *model.IndicatorSet) int {
	score := 0
	if ind.MA20 != nil && price > *ind.MA20 {
		score++
	}
	if ind.MA5 != nil && ind.MA20 != nil && *ind.MA5 > *ind.MA20 {
		score++
	}
	if ind.RSI14 != nil && *ind.RSI14 > 40 && *ind.RSI14 < 60 {
		score++
	}
	if ind.RSI14 != nil && *ind.RSI14 < 30 {
		// Oversold counts in favor of an entry.
		score++
	}
	if ind.MACD != nil && *ind.MACD > 0 {
		score++
	}
	if ind.Sharpe != nil && *ind.Sharpe > 0 {
		score++
	}
	return score
}

// position52w locates price within the 52-week range as a percentage.
// A degenerate or missing range maps to the midpoint.
func position52w(price, high, low float64) float64 {
	if high <= low {
		return 50
	}
	return (price - low) / (high - low) * 100
}

// volumeTrend compares the most recent volume to the mean of the trailing
// 15 volumes (or all of them when fewer).
func volumeTrend(volumes []float64) string {
	if len(volumes) == 0 {
		return model.VolumeNormal
	}
	window := volumes
	if len(window) > volumeTrendWindow {
		window = window[len(window)-volumeTrendWindow:]
	}
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	avg := sum / float64(len(window))
	recent := volumes[len(volumes)-1]
	switch {
	case recent > avg*1.2:
		return model.VolumeHeavy
	case recent < avg*0.8:
		return model.VolumeLight
	default:
		return model.VolumeNormal
	}
}

func momentum(rsi *float64) string {
	if rsi == nil {
		return model.MomentumNeutral
	}
	switch {
	case *rsi > 70:
		return model.MomentumOverbought
	case *rsi < 30:
		return model.MomentumOversold
	default:
		return model.MomentumNeutral
	}
}
