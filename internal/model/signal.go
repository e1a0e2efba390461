package model

// Composite technical signal labels.
const (
	SignalBullish = "bullish"
	SignalNeutral = "neutral"
	SignalBearish = "bearish"
)

// 52-week position buckets.
const (
	PositionNearHigh = "near high / overheated"
	PositionNearLow  = "near low / value zone"
	PositionNeutral  = "neutral"
)

// Volume trend buckets.
const (
	VolumeHeavy  = "heavy"
	VolumeLight  = "light"
	VolumeNormal = "normal"
)

// RSI momentum labels.
const (
	MomentumOverbought = "overbought"
	MomentumOversold   = "oversold"
	MomentumNeutral    = "neutral"
)

// Risk buckets shared by volatility and drawdown.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

// SignalScore is derived from an IndicatorSet plus the current market
// context. Ephemeral, recomputed per invocation.
type SignalScore struct {
	TechScore        int     `json:"tech_score"`
	TechSignal       string  `json:"tech_signal"`
	Position52w      float64 `json:"position_52w"`
	PositionBucket   string  `json:"position_bucket"`
	VolumeTrend      string  `json:"volume_trend"`
	Momentum         string  `json:"momentum"`
	VolatilityBucket string  `json:"volatility_bucket,omitempty"`
	DrawdownBucket   string  `json:"drawdown_bucket,omitempty"`
}
