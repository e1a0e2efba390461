package fetcher

import (
	"time"

	"StockLens/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	History *model.PriceHistory
	Err     error
	Calls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(symbol string) (*model.PriceHistory, error) {
	m.Calls++
	if m.Err != nil {
		return nil, &FetchError{Symbol: symbol, Err: m.Err}
	}
	if m.History != nil {
		return m.History, nil
	}
	return GenerateHistory(symbol, 22, 100), nil
}

// GenerateHistory builds a gently trending synthetic series around basePrice.
func GenerateHistory(symbol string, days int, basePrice float64) *model.PriceHistory {
	h := &model.PriceHistory{
		Symbol:      symbol,
		Currency:    "USD",
		High52w:     basePrice * 1.2,
		Low52w:      basePrice * 0.8,
		LastUpdated: time.Now(),
	}
	start := time.Now().AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		p := basePrice * (1 + float64(i-days/2)*0.001)
		h.Closes = append(h.Closes, p)
		h.Volumes = append(h.Volumes, 1000000)
		h.Timestamps = append(h.Timestamps, start.AddDate(0, 0, i).Unix())
	}
	h.CurrentPrice = h.Closes[len(h.Closes)-1]
	return h
}
