package marketdata

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
)

// DefaultSymbols is the watchlist shown when a request names no symbols.
var DefaultSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA",
	"BABA", "META", "NFLX", "AMD", "CRM", "ORCL",
}

// DefaultRateCodes is used when a request names no currency codes.
var DefaultRateCodes = []string{"USD", "EUR", "GBP"}

// fallbackPrices is the last-resort quote table, answered when every
// provider is unreachable.
var fallbackPrices = map[string]float64{
	"AAPL": 175.0, "MSFT": 380.0, "GOOGL": 140.0, "AMZN": 155.0,
	"NVDA": 875.0, "TSLA": 250.0, "BABA": 85.0, "META": 485.0,
	"NFLX": 450.0, "AMD": 145.0, "CRM": 220.0, "ORCL": 118.0,
}

// fallbackTLRates is the last-resort TL-per-unit table.
var fallbackTLRates = map[string]float64{
	"USD": 34.15,
	"EUR": 37.20,
	"GBP": 43.50,
}

func (c *Client) fallbackQuotes(symbols []string) []Quote {
	quotes := make([]Quote, 0, len(symbols))
	for _, symbol := range symbols {
		base, ok := fallbackPrices[symbol]
		if !ok {
			base = 100.0
		}
		quotes = append(quotes, Quote{
			Symbol:   symbol,
			Name:     symbol + " Inc.",
			Price:    decimal.NewFromFloat(base),
			Currency: "USD",
		})
	}

	c.logger.WithField("quotes", spew.Sdump(quotes)).Debug("marketdata.quotes.static fallback")
	return quotes
}

func fallbackRates(codes []string) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(codes))
	for _, code := range codes {
		if value, ok := fallbackTLRates[code]; ok {
			rates[code] = decimal.NewFromFloat(value)
		}
	}
	return rates
}
