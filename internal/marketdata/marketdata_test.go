package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestClient() *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &Client{
		httpClient: &http.Client{Timeout: time.Second},
		logger:     logger,
	}
}

const yahooPayload = `{
	"quoteResponse": {
		"result": [
			{
				"symbol": "AAPL",
				"shortName": "Apple Inc.",
				"regularMarketPrice": 180.5,
				"regularMarketChange": 1.25,
				"regularMarketChangePercent": 0.7,
				"currency": "USD"
			}
		]
	}
}`

func TestGetQuotes_PrimaryProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
		w.Write([]byte(yahooPayload))
	}))
	defer server.Close()

	client := newTestClient()
	client.quoteSources = []quoteSource{
		{name: "test", url: yahooQuoteURL(server.URL), parse: parseYahooQuotes},
	}

	quotes, err := client.GetQuotes(context.Background(), []string{"AAPL"})

	assert.NoError(t, err)
	assert.Len(t, quotes, 1)
	assert.Equal(t, "AAPL", quotes[0].Symbol)
	assert.Equal(t, "Apple Inc.", quotes[0].Name)
	assert.Equal(t, "180.5", quotes[0].Price.String())
}

func TestGetQuotes_FailsOverToBackup(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(yahooPayload))
	}))
	defer working.Close()

	client := newTestClient()
	client.quoteSources = []quoteSource{
		{name: "broken", url: yahooQuoteURL(broken.URL), parse: parseYahooQuotes},
		{name: "working", url: yahooQuoteURL(working.URL), parse: parseYahooQuotes},
	}

	quotes, err := client.GetQuotes(context.Background(), []string{"AAPL"})

	assert.NoError(t, err)
	assert.Len(t, quotes, 1)
}

func TestGetQuotes_StaticFallback(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()

	client := newTestClient()
	client.quoteSources = []quoteSource{
		{name: "broken", url: yahooQuoteURL(broken.URL), parse: parseYahooQuotes},
	}

	quotes, err := client.GetQuotes(context.Background(), []string{"AAPL", "UNKNOWN"})

	assert.NoError(t, err)
	assert.Len(t, quotes, 2)
	assert.Equal(t, "175", quotes[0].Price.String())
	assert.Equal(t, "100", quotes[1].Price.String())
}

func TestGetQuotes_NoSymbols(t *testing.T) {
	client := newTestClient()

	quotes, err := client.GetQuotes(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, quotes)
}

const ratesPayload = `{
	"rates": {
		"TRY": 34.15,
		"USD": 1.0,
		"EUR": 0.92,
		"GBP": 0.79
	}
}`

func TestGetRates_Provider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ratesPayload))
	}))
	defer server.Close()

	client := newTestClient()
	client.rateSources = []rateSource{
		{name: "test", url: server.URL, parse: parseUSDBaseRates},
	}

	rates, err := client.GetRates(context.Background(), []string{"USD", "EUR", "GBP"})

	assert.NoError(t, err)
	assert.Equal(t, "34.15", rates["USD"].String())
	// 34.15 / 0.92 rounded to 4 places
	assert.Equal(t, "37.1196", rates["EUR"].String())
	assert.Equal(t, "43.2278", rates["GBP"].String())
}

func TestGetRates_StaticFallback(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	client := newTestClient()
	client.rateSources = []rateSource{
		{name: "broken", url: broken.URL, parse: parseUSDBaseRates},
	}

	rates, err := client.GetRates(context.Background(), []string{"USD", "EUR"})

	assert.NoError(t, err)
	assert.Equal(t, "34.15", rates["USD"].String())
	assert.Equal(t, "37.2", rates["EUR"].String())
}

func TestParseUSDBaseRates_MissingTRY(t *testing.T) {
	_, err := parseUSDBaseRates([]byte(`{"rates": {"USD": 1.0}}`), []string{"USD"})
	assert.Error(t, err)
}
