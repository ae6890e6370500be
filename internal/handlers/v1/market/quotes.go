package market

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/marketdata"
)

// QuotesInput is the Huma input for the quotes endpoint.
type QuotesInput struct {
	Symbols string `query:"symbols" doc:"Comma-separated ticker symbols, defaults to the standard watchlist"`
}

// QuotesResponseBody is the response body for the quotes endpoint.
type QuotesResponseBody struct {
	Quotes []marketdata.Quote `json:"quotes" doc:"Priced symbols"`
}

// QuotesOutput is the Huma output for the quotes endpoint.
type QuotesOutput struct {
	Body QuotesResponseBody
}

// QuotesHandler handles GET /v1/market/quotes.
type QuotesHandler struct {
	Provider marketdata.QuoteProvider
}

// NewQuotesHandler creates a new QuotesHandler.
func NewQuotesHandler(provider marketdata.QuoteProvider) *QuotesHandler {
	return &QuotesHandler{Provider: provider}
}

// Register registers the endpoint with the Huma API.
func (h *QuotesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "market-quotes",
		Method:      http.MethodGet,
		Path:        "/v1/market/quotes",
		Summary:     "Stock quotes",
		Description: "Returns quotes for the requested symbols, falling back to cached reference prices when no provider answers.",
		Tags:        []string{"Market"},
	}, h.handle)
}

func (h *QuotesHandler) handle(ctx context.Context, input *QuotesInput) (*QuotesOutput, error) {
	logData := logging.GetLogData(ctx)

	symbols := splitList(input.Symbols)
	if len(symbols) == 0 {
		symbols = marketdata.DefaultSymbols
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getQuotesMs")
	}
	quotes, err := h.Provider.GetQuotes(ctx, symbols)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to fetch quotes", err)
	}

	if logData != nil {
		logData.AddData("quoteCount", len(quotes))
	}

	return &QuotesOutput{Body: QuotesResponseBody{Quotes: quotes}}, nil
}

// splitList splits a comma-separated query value, dropping empty parts.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
