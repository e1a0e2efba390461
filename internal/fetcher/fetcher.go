package fetcher

import (
	"fmt"

	"StockLens/internal/model"
)

// Fetcher supplies one month of daily closes and volumes for a symbol.
type Fetcher interface {
	FetchHistory(symbol string) (*model.PriceHistory, error)
	Name() string
}

// FetchError reports an upstream network or parse failure for one symbol.
// The core never retries it; retry policy belongs to the caller.
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
