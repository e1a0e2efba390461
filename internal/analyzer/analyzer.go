// Package analyzer orchestrates one analysis pass: cache lookup, fetch on
// miss, indicator computation and signal scoring.
package analyzer

import (
	"log"
	"time"

	"StockLens/internal/cache"
	"StockLens/internal/fetcher"
	"StockLens/internal/model"
	"StockLens/internal/quant"
	"StockLens/internal/signal"
)

// Analyzer runs the analysis pipeline for one symbol at a time. It is
// synchronous; each invocation either completes with a full result or
// fails with the upstream error.
type Analyzer struct {
	Fetcher fetcher.Fetcher
	Store   cache.Store
	TTL     time.Duration
}

// Result bundles everything a formatter needs.
type Result struct {
	History    *model.PriceHistory
	Indicators *model.IndicatorSet
	Signals    *model.SignalScore
	FromCache  bool
}

// New creates an Analyzer. TTL governs how long cached payloads are reused.
func New(f fetcher.Fetcher, store cache.Store, ttl time.Duration) *Analyzer {
	return &Analyzer{Fetcher: f, Store: store, TTL: ttl}
}

// Analyze runs the full pipeline for symbol. A cache miss triggers a fetch
// and a write-back; a failed write-back is logged but does not fail the
// analysis. Upstream failures surface unmodified as *fetcher.FetchError.
func (a *Analyzer) Analyze(symbol string) (*Result, error) {
	hist, hit := a.Store.Get(symbol, a.TTL)
	if hit {
		log.Printf("[INFO] using cached data for %s", symbol)
	} else {
		var err error
		hist, err = a.Fetcher.FetchHistory(symbol)
		if err != nil {
			return nil, err
		}
	}

	ind := quant.Compute(hist)
	sig := signal.Evaluate(hist.CurrentPrice, ind, hist.High52w, hist.Low52w, hist.Volumes)

	if !hit {
		// Persist the fresh payload together with the snapshot just
		// computed; the snapshot is informational and recomputed on read.
		entry := *hist
		entry.Technical = ind
		if err := a.Store.Put(symbol, &entry); err != nil {
			log.Printf("[WARN] cache write for %s failed: %v", symbol, err)
		}
	}

	return &Result{History: hist, Indicators: ind, Signals: sig, FromCache: hit}, nil
}
