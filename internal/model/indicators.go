package model

// IndicatorSet is a derived snapshot of technical metrics for one
// PriceHistory. It is recomputed on every request and never persisted on
// its own. A nil field means the series was too short for that metric.
type IndicatorSet struct {
	MA5         *float64 `json:"ma5,omitempty"`
	MA20        *float64 `json:"ma20,omitempty"`
	MA60        *float64 `json:"ma60,omitempty"`
	RSI14       *float64 `json:"rsi14,omitempty"`
	MACD        *float64 `json:"macd,omitempty"`
	MACDSignal  *float64 `json:"macd_signal,omitempty"`
	MACDHist    *float64 `json:"macd_hist,omitempty"`
	BBUpper     *float64 `json:"bb_upper,omitempty"`
	BBMiddle    *float64 `json:"bb_middle,omitempty"`
	BBLower     *float64 `json:"bb_lower,omitempty"`
	Volatility  *float64 `json:"volatility,omitempty"`
	MaxDrawdown *float64 `json:"max_drawdown,omitempty"`
	Sharpe      *float64 `json:"sharpe,omitempty"`
	AvgVolume   *float64 `json:"avg_volume,omitempty"`
}
