package signal

import (
	"testing"

	"StockLens/internal/model"
)

func f(v float64) *float64 { return &v }

func TestEvaluateFiveOfSix(t *testing.T) {
	// price > MA20, MA5 > MA20, RSI in (40,60), MACD > 0, Sharpe > 0:
	// five points (RSI < 30 is false), label bullish.
	ind := &model.IndicatorSet{
		MA5:    f(105),
		MA20:   f(100),
		RSI14:  f(45),
		MACD:   f(0.5),
		Sharpe: f(1.2),
	}
	s := Evaluate(110, ind, 120, 80, []float64{1e6})
	if s.TechScore != 5 {
		t.Errorf("score = %d, want 5", s.TechScore)
	}
	if s.TechSignal != model.SignalBullish {
		t.Errorf("signal = %q, want %q", s.TechSignal, model.SignalBullish)
	}
}

func TestEvaluateEmptyIndicators(t *testing.T) {
	s := Evaluate(100, &model.IndicatorSet{}, 0, 0, nil)
	if s.TechScore != 0 {
		t.Errorf("score = %d, want 0 when every metric is unavailable", s.TechScore)
	}
	if s.TechSignal != model.SignalBearish {
		t.Errorf("signal = %q, want %q", s.TechSignal, model.SignalBearish)
	}
	if s.Position52w != 50 || s.PositionBucket != model.PositionNeutral {
		t.Errorf("degenerate range should map to the midpoint, got %v / %q", s.Position52w, s.PositionBucket)
	}
	if s.VolumeTrend != model.VolumeNormal {
		t.Errorf("volume trend = %q, want %q", s.VolumeTrend, model.VolumeNormal)
	}
	if s.Momentum != model.MomentumNeutral {
		t.Errorf("momentum = %q, want %q", s.Momentum, model.MomentumNeutral)
	}
}

func TestTechSignalLabels(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{5, model.SignalBullish},
		{4, model.SignalBullish},
		{3, model.SignalNeutral},
		{2, model.SignalNeutral},
		{1, model.SignalBearish},
		{0, model.SignalBearish},
	}
	for _, tt := range tests {
		// Build an indicator set that yields exactly tt.score points.
		ind := &model.IndicatorSet{}
		price := 90.0
		if tt.score >= 1 {
			ind.MA20 = f(80) // price > MA20
		}
		if tt.score >= 2 {
			ind.MA5 = f(85) // MA5 > MA20
		}
		if tt.score >= 3 {
			ind.RSI14 = f(50) // in (40,60)
		}
		if tt.score >= 4 {
			ind.MACD = f(0.1)
		}
		if tt.score >= 5 {
			ind.Sharpe = f(0.5)
		}
		s := Evaluate(price, ind, 0, 0, nil)
		if s.TechScore != tt.score {
			t.Errorf("constructed score = %d, want %d", s.TechScore, tt.score)
			continue
		}
		if s.TechSignal != tt.want {
			t.Errorf("score %d: signal = %q, want %q", tt.score, s.TechSignal, tt.want)
		}
	}
}

func TestPositionBuckets(t *testing.T) {
	tests := []struct {
		price, high, low float64
		wantPos          float64
		wantBucket       string
	}{
		{110, 120, 80, 75, model.PositionNearHigh},
		{90, 120, 80, 25, model.PositionNearLow},
		{100, 120, 80, 50, model.PositionNeutral},
		{100, 100, 100, 50, model.PositionNeutral}, // degenerate range
	}
	for _, tt := range tests {
		s := Evaluate(tt.price, &model.IndicatorSet{}, tt.high, tt.low, nil)
		if s.Position52w != tt.wantPos {
			t.Errorf("price %v in [%v,%v]: position = %v, want %v",
				tt.price, tt.low, tt.high, s.Position52w, tt.wantPos)
		}
		if s.PositionBucket != tt.wantBucket {
			t.Errorf("price %v: bucket = %q, want %q", tt.price, s.PositionBucket, tt.wantBucket)
		}
	}
}

func TestVolumeTrend(t *testing.T) {
	flat := make([]float64, 15)
	for i := range flat {
		flat[i] = 100
	}

	heavy := append(append([]float64{}, flat[:14]...), 200) // well above the window mean
	light := append(append([]float64{}, flat[:14]...), 40)  // well below

	tests := []struct {
		volumes []float64
		want    string
	}{
		{flat, model.VolumeNormal},
		{heavy, model.VolumeHeavy},
		{light, model.VolumeLight},
		{[]float64{100, 101}, model.VolumeNormal}, // short series uses all volumes
		{nil, model.VolumeNormal},
	}
	for _, tt := range tests {
		s := Evaluate(100, &model.IndicatorSet{}, 0, 0, tt.volumes)
		if s.VolumeTrend != tt.want {
			t.Errorf("volumes %v: trend = %q, want %q", tt.volumes, s.VolumeTrend, tt.want)
		}
	}
}

func TestMomentumLabels(t *testing.T) {
	tests := []struct {
		rsi  *float64
		want string
	}{
		{f(75), model.MomentumOverbought},
		{f(25), model.MomentumOversold},
		{f(50), model.MomentumNeutral},
		{f(70), model.MomentumNeutral}, // boundary is exclusive
		{f(30), model.MomentumNeutral},
		{nil, model.MomentumNeutral},
	}
	for _, tt := range tests {
		s := Evaluate(100, &model.IndicatorSet{RSI14: tt.rsi}, 0, 0, nil)
		if s.Momentum != tt.want {
			t.Errorf("rsi %v: momentum = %q, want %q", tt.rsi, s.Momentum, tt.want)
		}
	}
}

func TestRiskBuckets(t *testing.T) {
	s := Evaluate(100, &model.IndicatorSet{Volatility: f(35), MaxDrawdown: f(25)}, 0, 0, nil)
	if s.VolatilityBucket != model.RiskHigh || s.DrawdownBucket != model.RiskHigh {
		t.Errorf("expected high buckets, got %q / %q", s.VolatilityBucket, s.DrawdownBucket)
	}

	s = Evaluate(100, &model.IndicatorSet{Volatility: f(20), MaxDrawdown: f(15)}, 0, 0, nil)
	if s.VolatilityBucket != model.RiskMedium || s.DrawdownBucket != model.RiskMedium {
		t.Errorf("expected medium buckets, got %q / %q", s.VolatilityBucket, s.DrawdownBucket)
	}

	s = Evaluate(100, &model.IndicatorSet{Volatility: f(10), MaxDrawdown: f(5)}, 0, 0, nil)
	if s.VolatilityBucket != model.RiskLow || s.DrawdownBucket != model.RiskLow {
		t.Errorf("expected low buckets, got %q / %q", s.VolatilityBucket, s.DrawdownBucket)
	}

	s = Evaluate(100, &model.IndicatorSet{}, 0, 0, nil)
	if s.VolatilityBucket != "" || s.DrawdownBucket != "" {
		t.Errorf("expected empty buckets for unavailable metrics, got %q / %q",
			s.VolatilityBucket, s.DrawdownBucket)
	}
}
