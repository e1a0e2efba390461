package model

import "time"

// PriceHistory holds the raw daily price series for one symbol.
// Closes, Volumes and Timestamps are parallel slices, chronologically
// ordered and free of null/zero placeholder entries. Once built by a
// fetcher or loaded from cache, a PriceHistory is read-only.
type PriceHistory struct {
	SchemaVersion int           `json:"schema_version"`
	Symbol        string        `json:"symbol"`
	Currency      string        `json:"currency"`
	CurrentPrice  float64       `json:"current_price"`
	High52w       float64       `json:"52w_high"`
	Low52w        float64       `json:"52w_low"`
	Closes        []float64     `json:"closes"`
	Volumes       []float64     `json:"volumes"`
	Timestamps    []int64       `json:"timestamps"`
	LastUpdated   time.Time     `json:"last_updated"`
	Technical     *IndicatorSet `json:"technical,omitempty"`
}
