package quant

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when a series is too short for the
// requested period. Callers treat it as "metric unavailable", not a failure.
var ErrInsufficientData = errors.New("not enough data")

// MACD parameters shared by every call site.
const (
	MACDFast         = 12
	MACDSlow         = 26
	MACDSignalPeriod = 9
)

// DefaultRiskFreeRate is the annual risk-free rate assumed by SharpeRatio.
const DefaultRiskFreeRate = 0.02

const tradingDaysPerYear = 252

// SMA computes the simple moving average over the last period elements.
func SMA(series []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(series) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(series) - period; i < len(series); i++ {
		sum += series[i]
	}
	return sum / float64(period), nil
}

// EMA computes an exponential moving average seeded with the element period
// positions from the end, then folded over the last period elements. The
// fold revisits the seed element. Not the textbook recursive EMA; callers
// depend on these exact values.
func EMA(series []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(series) < period {
		return 0, ErrInsufficientData
	}
	multiplier := 2.0 / float64(period+1)
	ema := series[len(series)-period]
	for _, price := range series[len(series)-period:] {
		ema = price*multiplier + ema*(1-multiplier)
	}
	return ema, nil
}

// RSI computes the relative strength index over the given period, averaging
// the trailing period gains and losses. Requires period+1 prices. A window
// with zero average loss yields exactly 100.
func RSI(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period+1 {
		return 0, ErrInsufficientData
	}
	gains := make([]float64, 0, len(prices)-1)
	losses := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}
	var avgGain, avgLoss float64
	for _, g := range gains[len(gains)-period:] {
		avgGain += g
	}
	for _, l := range losses[len(losses)-period:] {
		avgLoss += l
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100, nil
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}

// MACD returns the MACD line (EMA12 - EMA26) and the signal line. The
// signal line is a 9-period EMA over the last 26 raw prices, not over a
// MACD-line history.
func MACD(prices []float64) (line, signal float64, err error) {
	fast, err := EMA(prices, MACDFast)
	if err != nil {
		return 0, 0, err
	}
	slow, err := EMA(prices, MACDSlow)
	if err != nil {
		return 0, 0, err
	}
	signal, err = EMA(prices[len(prices)-MACDSlow:], MACDSignalPeriod)
	if err != nil {
		return 0, 0, err
	}
	return fast - slow, signal, nil
}

// MACDHistogram returns the MACD line, signal line and their difference.
func MACDHistogram(prices []float64) (line, signal, hist float64, err error) {
	line, signal, err = MACD(prices)
	if err != nil {
		return 0, 0, 0, err
	}
	return line, signal, line - signal, nil
}

// Bollinger computes the volatility envelope around the period SMA using
// population variance (divide by period, not period-1).
// Invariant: upper >= middle >= lower.
func Bollinger(prices []float64, period int, width float64) (upper, middle, lower float64, err error) {
	middle, err = SMA(prices, period)
	if err != nil {
		return 0, 0, 0, err
	}
	var variance float64
	for _, p := range prices[len(prices)-period:] {
		d := p - middle
		variance += d * d
	}
	variance /= float64(period)
	std := math.Sqrt(variance)
	return middle + width*std, middle, middle - width*std, nil
}

// DailyReturns computes simple day-over-day returns; the result has one
// fewer element than closes.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}
	return returns
}

// Volatility annualizes the sample standard deviation of daily returns and
// expresses it as a percentage.
func Volatility(returns []float64) (float64, error) {
	if len(returns) < 2 {
		return 0, ErrInsufficientData
	}
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	var ss float64
	for _, r := range returns {
		d := r - mean
		ss += d * d
	}
	daily := math.Sqrt(ss / float64(len(returns)-1))
	return daily * math.Sqrt(tradingDaysPerYear) * 100, nil
}

// MaxDrawdown measures the largest percentage decline below the single
// global maximum of the series, not a running peak. Always >= 0, and 0
// only when every price equals the maximum.
func MaxDrawdown(prices []float64) (float64, error) {
	if len(prices) == 0 {
		return 0, ErrInsufficientData
	}
	maxPrice := prices[0]
	for _, p := range prices {
		if p > maxPrice {
			maxPrice = p
		}
	}
	var maxDD float64
	for _, p := range prices {
		dd := (maxPrice - p) / maxPrice
		if dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD * 100, nil
}

// SharpeRatio computes annualized excess return per unit of volatility.
// The sum of squared deviations is not divided by n before the square root.
func SharpeRatio(returns []float64, riskFreeRate float64) (float64, error) {
	if len(returns) < 2 {
		return 0, ErrInsufficientData
	}
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	annReturn := mean * tradingDaysPerYear

	var ss float64
	for _, r := range returns {
		d := r - annReturn/tradingDaysPerYear
		ss += d * d
	}
	annStd := math.Sqrt(ss) * math.Sqrt(tradingDaysPerYear)
	if annStd == 0 {
		return 0, errors.New("zero standard deviation")
	}
	return (annReturn - riskFreeRate) / annStd, nil
}
