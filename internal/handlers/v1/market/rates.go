package market

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/marketdata"
)

// RatesInput is the Huma input for the rates endpoint.
type RatesInput struct {
	Codes string `query:"codes" doc:"Comma-separated ISO currency codes, defaults to USD,EUR,GBP"`
}

// RatesResponseBody is the response body for the rates endpoint.
type RatesResponseBody struct {
	Rates map[string]decimal.Decimal `json:"rates" doc:"TL value of one unit of each currency"`
}

// RatesOutput is the Huma output for the rates endpoint.
type RatesOutput struct {
	Body RatesResponseBody
}

// RatesHandler handles GET /v1/market/rates.
type RatesHandler struct {
	Provider marketdata.RateProvider
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(provider marketdata.RateProvider) *RatesHandler {
	return &RatesHandler{Provider: provider}
}

// Register registers the endpoint with the Huma API.
func (h *RatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "market-rates",
		Method:      http.MethodGet,
		Path:        "/v1/market/rates",
		Summary:     "Currency rates",
		Description: "Returns TL rates for the requested currency codes, falling back to cached reference rates when no provider answers.",
		Tags:        []string{"Market"},
	}, h.handle)
}

func (h *RatesHandler) handle(ctx context.Context, input *RatesInput) (*RatesOutput, error) {
	logData := logging.GetLogData(ctx)

	codes := make([]string, 0, 3)
	for _, code := range strings.Split(input.Codes, ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		codes = marketdata.DefaultRateCodes
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getRatesMs")
	}
	rates, err := h.Provider.GetRates(ctx, codes)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to fetch rates", err)
	}

	if logData != nil {
		logData.AddData("rateCount", len(rates))
	}

	return &RatesOutput{Body: RatesResponseBody{Rates: rates}}, nil
}
