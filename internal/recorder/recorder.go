package recorder

import "StockLens/internal/model"

// Snapshot holds one completed analysis for persistence.
type Snapshot struct {
	Symbol     string
	History    *model.PriceHistory
	Indicators *model.IndicatorSet
	Signals    *model.SignalScore
}

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordAnalysis(snap *Snapshot) error
	Close() error
}
