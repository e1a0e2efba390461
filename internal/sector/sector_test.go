package sector

import (
	"os"
	"path/filepath"
	"testing"

	"StockLens/internal/model"
)

func TestLookupKnownSymbol(t *testing.T) {
	table := NewTable()
	info := table.Lookup("NVDA")
	if info.Sector != "Semiconductors" || info.AvgPE != 35 || info.GrowthRate != 0.40 {
		t.Errorf("unexpected NVDA entry: %+v", info)
	}
}

func TestLookupFullSymbolBeforeBase(t *testing.T) {
	table := NewTable()
	// 0700.HK has an exact entry; the base "0700" does not.
	if info := table.Lookup("0700.HK"); info.Sector != "Internet/Tech" {
		t.Errorf("expected the exact dotted entry, got %+v", info)
	}
	// A dotted variant of a known base falls back to the base entry.
	if info := table.Lookup("AAPL.MX"); info.Sector != "Technology" {
		t.Errorf("expected base-symbol fallback, got %+v", info)
	}
}

func TestLookupUnknownDefault(t *testing.T) {
	table := NewTable()
	info := table.Lookup("ZZZZ")
	if info != Unknown {
		t.Errorf("expected the Unknown default, got %+v", info)
	}
	if info.Sector != "Unknown" || info.AvgPE != 25 || info.GrowthRate != 0.10 {
		t.Errorf("Unknown default drifted: %+v", info)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sectors.yaml")
	content := "NVDA:\n  sector: Accelerators\n  avg_pe: 40\n  growth_rate: 0.35\nACME:\n  sector: Widgets\n  avg_pe: 12\n  growth_rate: 0.05\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sectors file: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if info := table.Lookup("NVDA"); info.Sector != "Accelerators" || info.AvgPE != 40 {
		t.Errorf("override not applied: %+v", info)
	}
	if info := table.Lookup("ACME"); info.Sector != "Widgets" {
		t.Errorf("new entry not applied: %+v", info)
	}
	if info := table.Lookup("AAPL"); info.Sector != "Technology" {
		t.Errorf("untouched default lost: %+v", info)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load of missing file should not fail: %v", err)
	}
	if info := table.Lookup("MSFT"); info.Sector != "Software" {
		t.Errorf("defaults missing after fallback: %+v", info)
	}
}

func TestEstimateFundamentals(t *testing.T) {
	table := NewTable()
	h := &model.PriceHistory{
		Symbol:       "NVDA",
		CurrentPrice: 140,
		Closes:       []float64{100, 120, 160, 140},
	}
	est := table.EstimateFundamentals(h)
	if est.Sector != "Semiconductors" {
		t.Errorf("sector = %q", est.Sector)
	}
	if est.EstimatedEPS != 4.0 { // 140 / 35
		t.Errorf("estimated EPS = %v, want 4.0", est.EstimatedEPS)
	}
	if est.PEGRatio != 0.88 { // 35 / 40, rounded
		t.Errorf("PEG = %v, want 0.88", est.PEGRatio)
	}
	if est.MonthlyReturn != 40.0 { // 100 -> 140
		t.Errorf("monthly return = %v, want 40.0", est.MonthlyReturn)
	}
	if est.Vs30dHigh != -12.5 { // vs the high of 160
		t.Errorf("vs 30d high = %v, want -12.5", est.Vs30dHigh)
	}
	if est.Vs30dLow != 40.0 { // vs the low of 100
		t.Errorf("vs 30d low = %v, want 40.0", est.Vs30dLow)
	}
}

func TestEstimateFundamentalsEmptySeries(t *testing.T) {
	table := NewTable()
	est := table.EstimateFundamentals(&model.PriceHistory{Symbol: "ZZZZ", CurrentPrice: 50})
	if est.Sector != "Unknown" {
		t.Errorf("sector = %q", est.Sector)
	}
	if est.EstimatedEPS != 2.0 { // 50 / 25
		t.Errorf("estimated EPS = %v, want 2.0", est.EstimatedEPS)
	}
	if est.MonthlyReturn != 0 || est.Vs30dHigh != 0 || est.Vs30dLow != 0 {
		t.Errorf("price-window metrics should stay zero without closes: %+v", est)
	}
}
