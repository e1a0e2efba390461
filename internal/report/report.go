// Package report renders an analysis result as plain text. It is the one
// canonical formatter; the core places no constraint on what consumes it.
package report

import (
	"fmt"
	"strings"
	"time"

	"StockLens/internal/model"
)

// Format renders the full analysis report.
func Format(h *model.PriceHistory, ind *model.IndicatorSet, sig *model.SignalScore, fund *model.FundamentalEstimate) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s analysis | %s ===\n\n", h.Symbol, time.Now().Format("2006-01-02 15:04")))

	b.WriteString("PRICE & TREND\n")
	b.WriteString(fmt.Sprintf("  Current: %s %.2f\n", h.Currency, h.CurrentPrice))
	if h.High52w > 0 && h.Low52w > 0 {
		b.WriteString(fmt.Sprintf("  52w range: %.2f - %.2f (position %.0f%%, %s)\n",
			h.Low52w, h.High52w, sig.Position52w, sig.PositionBucket))
	}
	b.WriteString(fmt.Sprintf("  MA(5):  %s\n", metric(ind.MA5)))
	b.WriteString(fmt.Sprintf("  MA(20): %s\n", metric(ind.MA20)))
	if ind.MA60 != nil {
		b.WriteString(fmt.Sprintf("  MA(60): %s\n", metric(ind.MA60)))
	}

	b.WriteString("\nMOMENTUM\n")
	b.WriteString(fmt.Sprintf("  RSI(14): %s (%s)\n", metric1(ind.RSI14), sig.Momentum))
	if ind.MACD != nil {
		b.WriteString(fmt.Sprintf("  MACD: %.3f | signal: %.3f | hist: %.3f\n",
			*ind.MACD, *ind.MACDSignal, *ind.MACDHist))
	} else {
		b.WriteString("  MACD: N/A\n")
	}

	b.WriteString("\nBOLLINGER BANDS\n")
	if ind.BBUpper != nil {
		b.WriteString(fmt.Sprintf("  Upper:  %.2f\n", *ind.BBUpper))
		b.WriteString(fmt.Sprintf("  Middle: %.2f\n", *ind.BBMiddle))
		b.WriteString(fmt.Sprintf("  Lower:  %.2f\n", *ind.BBLower))
		pos := "middle"
		if h.CurrentPrice > *ind.BBUpper {
			pos = "above upper"
		} else if h.CurrentPrice < *ind.BBLower {
			pos = "below lower"
		}
		b.WriteString(fmt.Sprintf("  Position: %s band\n", pos))
	} else {
		b.WriteString("  N/A\n")
	}

	b.WriteString("\nRISK\n")
	b.WriteString(fmt.Sprintf("  Annualized volatility: %s%s\n", pct(ind.Volatility), bucket(sig.VolatilityBucket)))
	b.WriteString(fmt.Sprintf("  Max drawdown: %s%s\n", pct(ind.MaxDrawdown), bucket(sig.DrawdownBucket)))
	b.WriteString(fmt.Sprintf("  Sharpe ratio: %s\n", metric(ind.Sharpe)))
	if ind.AvgVolume != nil {
		b.WriteString(fmt.Sprintf("  Avg volume: %.1fM (trend: %s)\n", *ind.AvgVolume/1e6, sig.VolumeTrend))
	}

	if fund != nil {
		b.WriteString("\nFUNDAMENTALS (sector estimates)\n")
		b.WriteString(fmt.Sprintf("  Sector: %s\n", fund.Sector))
		b.WriteString(fmt.Sprintf("  Est. PE: %.1f | Est. EPS: %.2f | PEG: %.2f\n",
			fund.EstimatedPE, fund.EstimatedEPS, fund.PEGRatio))
		b.WriteString(fmt.Sprintf("  Est. growth: %.0f%%\n", fund.GrowthRate*100))
		b.WriteString(fmt.Sprintf("  Monthly return: %+.1f%%\n", fund.MonthlyReturn))
		b.WriteString(fmt.Sprintf("  Vs 30d high: %.1f%% | vs 30d low: %+.1f%%\n", fund.Vs30dHigh, fund.Vs30dLow))
	}

	b.WriteString("\nSUMMARY\n")
	b.WriteString(fmt.Sprintf("  Technical signal: %s (score %d/6)\n", sig.TechSignal, sig.TechScore))
	b.WriteString("\nDisclaimer: for reference only, not investment advice.\n")

	return b.String()
}

func metric(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func pct(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func metric1(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *v)
}

func bucket(label string) string {
	if label == "" {
		return ""
	}
	return " (" + label + ")"
}
