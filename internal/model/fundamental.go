package model

// FundamentalEstimate holds rough, sector-derived valuation metrics for a
// symbol. These are estimates computed from price data and a static sector
// table, not real financial-statement figures.
type FundamentalEstimate struct {
	Sector        string  `json:"sector"`
	EstimatedPE   float64 `json:"estimated_pe"`
	EstimatedEPS  float64 `json:"estimated_eps"`
	PEGRatio      float64 `json:"peg_ratio"`
	GrowthRate    float64 `json:"growth_rate"`
	MonthlyReturn float64 `json:"monthly_return"` // percent
	Vs30dHigh     float64 `json:"vs_30d_high"`    // percent
	Vs30dLow      float64 `json:"vs_30d_low"`     // percent
}
