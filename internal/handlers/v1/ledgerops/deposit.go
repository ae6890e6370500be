package ledgerops

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/operator/actions"
)

// DepositBody is the request body for a deposit.
type DepositBody struct {
	AccountID string `json:"accountID" required:"true" doc:"Account id"`
	Amount    int64  `json:"amount" required:"true" minimum:"1" doc:"Amount in the smallest currency unit"`
}

// DepositInput is the Huma input for a deposit.
type DepositInput struct {
	Body DepositBody
}

// DepositResponse is the response body for a deposit.
type DepositResponse struct {
	Balance int64 `json:"balance" doc:"Main balance after the deposit"`
}

// DepositOutput is the response for a deposit.
type DepositOutput struct {
	Body DepositResponse
}

// DepositHandler handles POST /v1/ledger/deposit.
type DepositHandler struct {
	Operator ledgerProcessor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(op ledgerProcessor) *DepositHandler {
	return &DepositHandler{Operator: op}
}

// Register registers the endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/ledger/deposit",
		Summary:     "Deposit",
		Description: "Credits the account balance and appends a DEPOSIT record.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.Deposit{
		AccountID: input.Body.AccountID,
		Amount:    input.Body.Amount,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("depositMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httpError(err)
	}

	if logData != nil {
		logData.AddData("accountID", action.AccountID)
	}

	return &DepositOutput{Body: DepositResponse{Balance: action.NewBalance}}, nil
}
