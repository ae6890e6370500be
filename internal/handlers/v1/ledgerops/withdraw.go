package ledgerops

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/operator/actions"
)

// WithdrawBody is the request body for a withdrawal.
type WithdrawBody struct {
	AccountID string `json:"accountID" required:"true" doc:"Account id"`
	Amount    int64  `json:"amount" required:"true" minimum:"1" doc:"Amount in the smallest currency unit"`
}

// WithdrawInput is the Huma input for a withdrawal.
type WithdrawInput struct {
	Body WithdrawBody
}

// WithdrawResponse is the response body for a withdrawal.
type WithdrawResponse struct {
	Balance int64 `json:"balance" doc:"Main balance after the withdrawal"`
}

// WithdrawOutput is the response for a withdrawal.
type WithdrawOutput struct {
	Body WithdrawResponse
}

// WithdrawHandler handles POST /v1/ledger/withdraw.
type WithdrawHandler struct {
	Operator ledgerProcessor
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(op ledgerProcessor) *WithdrawHandler {
	return &WithdrawHandler{Operator: op}
}

// Register registers the endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/ledger/withdraw",
		Summary:     "Withdraw",
		Description: "Debits the account balance and appends a WITHDRAW record. Fails without mutation when funds are insufficient.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *WithdrawHandler) handle(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.Withdraw{
		AccountID: input.Body.AccountID,
		Amount:    input.Body.Amount,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("withdrawMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httpError(err)
	}

	return &WithdrawOutput{Body: WithdrawResponse{Balance: action.NewBalance}}, nil
}
