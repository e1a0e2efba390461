package report

import (
	"strings"
	"testing"

	"StockLens/internal/model"
	"StockLens/internal/quant"
	"StockLens/internal/signal"
)

func TestFormatSparseSnapshot(t *testing.T) {
	// A five-bar history yields MA5 only; everything else prints N/A
	// instead of zeros.
	h := &model.PriceHistory{
		Symbol:       "NVDA",
		Currency:     "USD",
		CurrentPrice: 104,
		Closes:       []float64{100, 101, 102, 103, 104},
		Volumes:      []float64{1e6, 1e6, 1e6, 1e6, 1e6},
	}
	ind := quant.Compute(h)
	sig := signal.Evaluate(h.CurrentPrice, ind, h.High52w, h.Low52w, h.Volumes)

	out := Format(h, ind, sig, nil)
	if !strings.Contains(out, "NVDA") {
		t.Error("report should mention the symbol")
	}
	if !strings.Contains(out, "MACD: N/A") {
		t.Error("unavailable MACD should print as N/A")
	}
	if !strings.Contains(out, "score") {
		t.Error("report should include the composite score")
	}
}

func TestFormatWithFundamentals(t *testing.T) {
	h := &model.PriceHistory{Symbol: "AAPL", Currency: "USD", CurrentPrice: 180}
	ind := &model.IndicatorSet{}
	sig := signal.Evaluate(h.CurrentPrice, ind, 0, 0, nil)
	fund := &model.FundamentalEstimate{Sector: "Technology", EstimatedPE: 28, EstimatedEPS: 6.43, PEGRatio: 3.5, GrowthRate: 0.08}

	out := Format(h, ind, sig, fund)
	if !strings.Contains(out, "Technology") {
		t.Error("report should include the sector estimate section")
	}
}
