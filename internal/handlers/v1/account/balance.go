package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/service"
)

// GetBalanceInput is the Huma input for a balance lookup.
type GetBalanceInput struct {
	ID string `path:"id" doc:"Account id"`
}

// GetBalanceResponse is the response body for a balance lookup.
type GetBalanceResponse struct {
	AccountID         string `json:"accountID" doc:"Account id"`
	Balance           int64  `json:"balance" doc:"Main balance, smallest currency unit"`
	InvestmentBalance int64  `json:"investmentBalance" doc:"Investment sub-balance"`
}

// GetBalanceOutput is the response for a balance lookup.
type GetBalanceOutput struct {
	Body GetBalanceResponse
}

// balanceReader is the interface for reading balances.
type balanceReader interface {
	GetBalance(ctx context.Context, id string) (*service.Balance, error)
}

// GetBalanceHandler handles GET /v1/accounts/{id}/balance.
type GetBalanceHandler struct {
	AccountService balanceReader
}

// NewGetBalanceHandler creates a new GetBalanceHandler.
func NewGetBalanceHandler(svc balanceReader) *GetBalanceHandler {
	return &GetBalanceHandler{AccountService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}/balance",
		Summary:     "Get balance",
		Description: "Reads both sub-balances straight from the store.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getBalanceMs")
	}
	balance, err := h.AccountService.GetBalance(ctx, input.ID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read balance", err)
	}

	return &GetBalanceOutput{Body: GetBalanceResponse{
		AccountID:         balance.AccountID,
		Balance:           balance.Balance,
		InvestmentBalance: balance.InvestmentBalance,
	}}, nil
}
