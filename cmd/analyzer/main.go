package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockLens/internal/analyzer"
	"StockLens/internal/cache"
	"StockLens/internal/config"
	"StockLens/internal/fetcher"
	"StockLens/internal/recorder"
	"StockLens/internal/report"
	"StockLens/internal/sector"
	"StockLens/internal/watcher"
)

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Optional .env for local development
	_ = godotenv.Load()

	watchMode := flag.Bool("watch", false, "run on a cron schedule instead of once")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("[FATAL] load config: %v", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[FATAL] config validation: %v", err)
		return 1
	}

	// Symbols from the command line take precedence over config
	symbols := flag.Args()
	if len(symbols) == 0 {
		symbols = cfg.Symbols
	}
	if len(symbols) == 0 {
		log.Println("[FATAL] no symbols given, pass them as arguments or set symbols in config")
		return 1
	}

	f := fetcher.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", f.Name())

	store, err := cache.NewFileStore(cfg.Cache.Dir)
	if err != nil {
		log.Printf("[FATAL] init cache: %v", err)
		return 1
	}

	sectors, err := sector.Load(cfg.SectorsFile)
	if err != nil {
		log.Printf("[FATAL] load sector table: %v", err)
		return 1
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	a := analyzer.New(f, store, cfg.TTL())

	if *watchMode {
		return runWatch(cfg, a, rec, sectors, symbols)
	}
	return runOnce(a, rec, sectors, symbols)
}

// runOnce analyzes every symbol and prints the reports.
func runOnce(a *analyzer.Analyzer, rec recorder.Recorder, sectors *sector.Table, symbols []string) int {
	failed := 0
	for _, sym := range symbols {
		res, err := a.Analyze(sym)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", sym, err)
			failed++
			continue
		}
		fund := sectors.EstimateFundamentals(res.History)
		fmt.Println(report.Format(res.History, res.Indicators, res.Signals, fund))

		if err := rec.RecordAnalysis(&recorder.Snapshot{
			Symbol:     sym,
			History:    res.History,
			Indicators: res.Indicators,
			Signals:    res.Signals,
		}); err != nil {
			log.Printf("[ERROR] record %s: %v", sym, err)
		}
	}
	if failed == len(symbols) {
		return 1
	}
	return 0
}

// runWatch schedules the analysis run and blocks until SIGINT/SIGTERM.
func runWatch(cfg *config.Config, a *analyzer.Analyzer, rec recorder.Recorder, sectors *sector.Table, symbols []string) int {
	w := watcher.New(a, rec, sectors, symbols)
	if err := w.Register(cfg.Watch.Cron); err != nil {
		log.Printf("[FATAL] register cron task: %v", err)
		return 1
	}
	w.Start()
	defer w.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing now")
		go w.RunAll()
	}

	log.Println("[INFO] StockLens is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	return 0
}
