// Package sector carries the symbol-to-sector valuation assumptions used
// for rough fundamental estimates. The table is configuration data loaded
// at startup, not logic; unknown symbols fall back to an explicit default.
package sector

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"StockLens/internal/model"
)

// Info describes sector-level valuation assumptions for a symbol.
type Info struct {
	Sector     string  `yaml:"sector"`
	AvgPE      float64 `yaml:"avg_pe"`
	GrowthRate float64 `yaml:"growth_rate"`
}

// Unknown is returned when a symbol has no entry in the table.
var Unknown = Info{Sector: "Unknown", AvgPE: 25, GrowthRate: 0.10}

// defaultEntries are the long-standing built-in estimates; a sectors file
// overlays them.
var defaultEntries = map[string]Info{
	"NVDA":      {Sector: "Semiconductors", AvgPE: 35, GrowthRate: 0.40},
	"AAPL":      {Sector: "Technology", AvgPE: 28, GrowthRate: 0.08},
	"MSFT":      {Sector: "Software", AvgPE: 35, GrowthRate: 0.12},
	"GOOGL":     {Sector: "Internet", AvgPE: 25, GrowthRate: 0.15},
	"AMZN":      {Sector: "E-commerce", AvgPE: 60, GrowthRate: 0.20},
	"TSLA":      {Sector: "EV/Auto", AvgPE: 50, GrowthRate: 0.25},
	"0700.HK":   {Sector: "Internet/Tech", AvgPE: 18, GrowthRate: 0.10},
	"9988.HK":   {Sector: "E-commerce", AvgPE: 20, GrowthRate: 0.08},
	"600519.SH": {Sector: "Consumer", AvgPE: 35, GrowthRate: 0.15},
}

// Table maps symbols to sector assumptions.
type Table struct {
	entries map[string]Info
}

// NewTable returns a table holding only the built-in defaults.
func NewTable() *Table {
	entries := make(map[string]Info, len(defaultEntries))
	for k, v := range defaultEntries {
		entries[k] = v
	}
	return &Table{entries: entries}
}

// Load builds a table from the built-in defaults overlaid with a YAML file
// mapping symbol to Info. A missing file (or empty path) yields just the
// defaults.
func Load(path string) (*Table, error) {
	t := NewTable()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("read sectors file: %w", err)
	}
	var overrides map[string]Info
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse sectors file: %w", err)
	}
	for k, v := range overrides {
		t.entries[k] = v
	}
	return t, nil
}

// Lookup tries the full symbol, then the base before the first dot, then
// falls back to Unknown.
func (t *Table) Lookup(symbol string) Info {
	if info, ok := t.entries[symbol]; ok {
		return info
	}
	if i := strings.IndexByte(symbol, '.'); i > 0 {
		if info, ok := t.entries[symbol[:i]]; ok {
			return info
		}
	}
	return Unknown
}

// EstimateFundamentals derives rough valuation metrics from price data and
// the sector assumptions. These are sector averages, not company figures.
func (t *Table) EstimateFundamentals(h *model.PriceHistory) *model.FundamentalEstimate {
	info := t.Lookup(h.Symbol)
	est := &model.FundamentalEstimate{
		Sector:      info.Sector,
		EstimatedPE: info.AvgPE,
		GrowthRate:  info.GrowthRate,
	}
	if h.CurrentPrice > 0 && info.AvgPE > 0 {
		est.EstimatedEPS = round2(h.CurrentPrice / info.AvgPE)
	}
	if info.GrowthRate > 0 {
		est.PEGRatio = round2(info.AvgPE / (info.GrowthRate * 100))
	}

	closes := h.Closes
	if len(closes) == 0 {
		return est
	}
	if closes[0] != 0 {
		est.MonthlyReturn = round1((closes[len(closes)-1] - closes[0]) / closes[0] * 100)
	}

	recent := closes
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}
	hi, lo := recent[0], recent[0]
	for _, c := range recent {
		if c > hi {
			hi = c
		}
		if c < lo {
			lo = c
		}
	}
	if hi > 0 {
		est.Vs30dHigh = round1((h.CurrentPrice - hi) / hi * 100)
	}
	if lo > 0 {
		est.Vs30dLow = round1((h.CurrentPrice - lo) / lo * 100)
	}
	return est
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
