// Package watcher re-runs the analysis pipeline for a set of symbols on a
// cron schedule, printing each report and recording the snapshot.
package watcher

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockLens/internal/analyzer"
	"StockLens/internal/recorder"
	"StockLens/internal/report"
	"StockLens/internal/sector"
)

// Watcher manages the cron task.
type Watcher struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Recorder recorder.Recorder
	Sectors  *sector.Table
	Symbols  []string
}

// New creates a Watcher for the given symbols.
func New(a *analyzer.Analyzer, rec recorder.Recorder, sectors *sector.Table, symbols []string) *Watcher {
	return &Watcher{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Recorder: rec,
		Sectors:  sectors,
		Symbols:  symbols,
	}
}

// Register schedules the analysis run on the given cron spec.
func (w *Watcher) Register(spec string) error {
	if _, err := w.Cron.AddFunc(spec, w.RunAll); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	log.Println("[INFO] watcher started")
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	log.Println("[INFO] watcher stopped")
}

// RunAll analyzes every configured symbol once. A failure on one symbol is
// logged and does not stop the rest.
func (w *Watcher) RunAll() {
	for _, sym := range w.Symbols {
		res, err := w.Analyzer.Analyze(sym)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", sym, err)
			continue
		}
		fund := w.Sectors.EstimateFundamentals(res.History)
		fmt.Println(report.Format(res.History, res.Indicators, res.Signals, fund))

		if err := w.Recorder.RecordAnalysis(&recorder.Snapshot{
			Symbol:     sym,
			History:    res.History,
			Indicators: res.Indicators,
			Signals:    res.Signals,
		}); err != nil {
			log.Printf("[ERROR] record %s: %v", sym, err)
		}
	}
}
