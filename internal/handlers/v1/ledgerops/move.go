package ledgerops

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/operator/actions"
)

// MoveBody is the request body for an intra-account move.
type MoveBody struct {
	AccountID string `json:"accountID" required:"true" doc:"Account id"`
	Direction string `json:"direction" required:"true" enum:"invest,redeem" doc:"invest: main to investment; redeem: investment to main"`
	Amount    int64  `json:"amount" required:"true" minimum:"1" doc:"Amount in the smallest currency unit"`
}

// MoveInput is the Huma input for an intra-account move.
type MoveInput struct {
	Body MoveBody
}

// MoveResponse is the response body for an intra-account move.
type MoveResponse struct {
	Balance           int64 `json:"balance" doc:"Main balance after the move"`
	InvestmentBalance int64 `json:"investmentBalance" doc:"Investment sub-balance after the move"`
}

// MoveOutput is the response for an intra-account move.
type MoveOutput struct {
	Body MoveResponse
}

// MoveHandler handles POST /v1/ledger/move.
type MoveHandler struct {
	Operator ledgerProcessor
}

// NewMoveHandler creates a new MoveHandler.
func NewMoveHandler(op ledgerProcessor) *MoveHandler {
	return &MoveHandler{Operator: op}
}

// Register registers the endpoint with the Huma API.
func (h *MoveHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "move-funds",
		Method:      http.MethodPost,
		Path:        "/v1/ledger/move",
		Summary:     "Move funds between sub-balances",
		Description: "Shifts funds between the main balance and the investment sub-balance.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *MoveHandler) handle(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	action := &actions.MoveFunds{
		AccountID: input.Body.AccountID,
		Direction: ledger.Direction(input.Body.Direction),
		Amount:    input.Body.Amount,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httpError(err)
	}

	return &MoveOutput{Body: MoveResponse{
		Balance:           action.NewBalance,
		InvestmentBalance: action.NewInvestmentBalance,
	}}, nil
}
