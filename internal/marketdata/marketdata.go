// Package marketdata supplies stock quotes and currency rates from public
// HTTP providers. Providers are consulted in order; when every provider
// fails the static fallback tables answer, so callers always get data.
// The ledger never depends on these values.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	userAgent       = "ValueVault/1.0"
	requestTimeout  = 6 * time.Second
	maxResponseSize = 1 << 20
)

// Quote is one priced symbol.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Currency      string          `json:"currency"`
}

// QuoteProvider supplies market quotes for a set of symbols.
type QuoteProvider interface {
	GetQuotes(ctx context.Context, symbols []string) ([]Quote, error)
}

// RateProvider supplies TL values per unit of each currency code.
type RateProvider interface {
	GetRates(ctx context.Context, codes []string) (map[string]decimal.Decimal, error)
}

type quoteSource struct {
	name  string
	url   func(symbols []string) string
	parse func(body []byte, symbols []string) ([]Quote, error)
}

type rateSource struct {
	name  string
	url   string
	parse func(body []byte, codes []string) (map[string]decimal.Decimal, error)
}

// Client implements QuoteProvider and RateProvider over a provider chain.
type Client struct {
	httpClient   *http.Client
	logger       *logrus.Logger
	quoteSources []quoteSource
	rateSources  []rateSource
}

func NewClient(logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
		quoteSources: []quoteSource{
			{
				name:  "yahoo-primary",
				url:   yahooQuoteURL("https://query1.finance.yahoo.com"),
				parse: parseYahooQuotes,
			},
			{
				name:  "yahoo-backup",
				url:   yahooQuoteURL("https://query2.finance.yahoo.com"),
				parse: parseYahooQuotes,
			},
		},
		rateSources: []rateSource{
			{
				name:  "exchangerate-api",
				url:   "https://api.exchangerate-api.com/v4/latest/USD",
				parse: parseUSDBaseRates,
			},
			{
				name:  "open-er-api",
				url:   "https://open.er-api.com/v6/latest/USD",
				parse: parseUSDBaseRates,
			},
		},
	}
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}

// GetQuotes tries each provider in order and falls back to the static table.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) ([]Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	for _, source := range c.quoteSources {
		body, err := c.fetch(ctx, source.url(symbols))
		if err != nil {
			c.logger.WithError(err).WithField("provider", source.name).Warn("marketdata.quotes.provider failed")
			continue
		}
		quotes, err := source.parse(body, symbols)
		if err != nil || len(quotes) == 0 {
			c.logger.WithError(err).WithField("provider", source.name).Warn("marketdata.quotes.parse failed")
			continue
		}
		return quotes, nil
	}

	return c.fallbackQuotes(symbols), nil
}

// GetRates tries each provider in order and falls back to the static table.
func (c *Client) GetRates(ctx context.Context, codes []string) (map[string]decimal.Decimal, error) {
	if len(codes) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	for _, source := range c.rateSources {
		body, err := c.fetch(ctx, source.url)
		if err != nil {
			c.logger.WithError(err).WithField("provider", source.name).Warn("marketdata.rates.provider failed")
			continue
		}
		rates, err := source.parse(body, codes)
		if err != nil || len(rates) == 0 {
			c.logger.WithError(err).WithField("provider", source.name).Warn("marketdata.rates.parse failed")
			continue
		}
		return rates, nil
	}

	return fallbackRates(codes), nil
}

func yahooQuoteURL(host string) func(symbols []string) string {
	return func(symbols []string) string {
		joined := ""
		for i, symbol := range symbols {
			if i > 0 {
				joined += ","
			}
			joined += symbol
		}
		return host + "/v7/finance/quote?symbols=" + joined
	}
}

func parseYahooQuotes(body []byte, _ []string) ([]Quote, error) {
	var payload struct {
		QuoteResponse struct {
			Result []struct {
				Symbol        string  `json:"symbol"`
				ShortName     string  `json:"shortName"`
				Price         float64 `json:"regularMarketPrice"`
				Change        float64 `json:"regularMarketChange"`
				ChangePercent float64 `json:"regularMarketChangePercent"`
				Currency      string  `json:"currency"`
			} `json:"result"`
		} `json:"quoteResponse"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	quotes := make([]Quote, 0, len(payload.QuoteResponse.Result))
	for _, row := range payload.QuoteResponse.Result {
		if row.Symbol == "" {
			continue
		}
		name := row.ShortName
		if name == "" {
			name = row.Symbol
		}
		quotes = append(quotes, Quote{
			Symbol:        row.Symbol,
			Name:          name,
			Price:         decimal.NewFromFloat(row.Price),
			Change:        decimal.NewFromFloat(row.Change),
			ChangePercent: decimal.NewFromFloat(row.ChangePercent),
			Currency:      row.Currency,
		})
	}
	return quotes, nil
}

// parseUSDBaseRates converts a USD-based rate sheet to TL per requested code:
// 1 USD = rates[TRY] TL, and 1 CODE = rates[TRY]/rates[CODE] TL.
func parseUSDBaseRates(body []byte, codes []string) (map[string]decimal.Decimal, error) {
	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	tryRate, ok := payload.Rates["TRY"]
	if !ok || tryRate == 0 {
		return nil, fmt.Errorf("no TRY rate in response")
	}
	tl := decimal.NewFromFloat(tryRate)

	result := make(map[string]decimal.Decimal, len(codes))
	for _, code := range codes {
		if code == "USD" {
			result[code] = tl
			continue
		}
		codeRate, ok := payload.Rates[code]
		if !ok || codeRate == 0 {
			continue
		}
		result[code] = tl.Div(decimal.NewFromFloat(codeRate)).Round(4)
	}
	return result, nil
}
