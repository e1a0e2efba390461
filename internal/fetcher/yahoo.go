package fetcher

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockLens/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				FiftyTwoWeekHigh   float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow    float64 `json:"fiftyTwoWeekLow"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchHistory fetches one month of daily bars plus current quote metadata.
// Any failure is wrapped in a *FetchError carrying the symbol.
func (f *YahooFetcher) FetchHistory(symbol string) (*model.PriceHistory, error) {
	h, err := f.fetchChart(symbol)
	if err != nil {
		return nil, &FetchError{Symbol: symbol, Err: err}
	}
	return h, nil
}

func (f *YahooFetcher) fetchChart(symbol string) (*model.PriceHistory, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1mo",
		url.PathEscape(symbol))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data returned")
	}
	quote := result.Indicators.Quote[0]

	type bar struct {
		ts     int64
		close  float64
		volume float64
	}
	bars := make([]bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || i >= len(quote.Volume) {
			break
		}
		c := toFloat(quote.Close[i])
		v := toFloat(quote.Volume[i])
		if c == 0 || v == 0 {
			continue // null placeholder bars (holidays etc.)
		}
		bars = append(bars, bar{ts: ts, close: c, volume: v})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no usable bars")
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].ts < bars[j].ts })

	h := &model.PriceHistory{
		Symbol:      result.Meta.Symbol,
		Currency:    result.Meta.Currency,
		High52w:     result.Meta.FiftyTwoWeekHigh,
		Low52w:      result.Meta.FiftyTwoWeekLow,
		LastUpdated: time.Now(),
	}
	if h.Symbol == "" {
		h.Symbol = symbol
	}
	if h.Currency == "" {
		h.Currency = "USD"
	}
	for _, b := range bars {
		h.Closes = append(h.Closes, b.close)
		h.Volumes = append(h.Volumes, b.volume)
		h.Timestamps = append(h.Timestamps, b.ts)
	}
	h.CurrentPrice = result.Meta.RegularMarketPrice
	if h.CurrentPrice == 0 {
		h.CurrentPrice = h.Closes[len(h.Closes)-1]
	}
	return h, nil
}
