package ledgerops

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/operator/actions"
)

// TransferBody is the request body for a transfer.
type TransferBody struct {
	SenderID    string `json:"senderID" required:"true" doc:"Sending account id"`
	RecipientID string `json:"recipientID" required:"true" doc:"Receiving account id"`
	Amount      int64  `json:"amount" required:"true" minimum:"1" doc:"Amount in the smallest currency unit"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	Body TransferBody
}

// TransferResponse is the response body for a transfer.
type TransferResponse struct {
	RecipientName string `json:"recipientName" doc:"Display name of the credited account"`
}

// TransferOutput is the response for a transfer.
type TransferOutput struct {
	Body TransferResponse
}

// TransferHandler handles POST /v1/ledger/transfer.
type TransferHandler struct {
	Operator ledgerProcessor
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op ledgerProcessor) *TransferHandler {
	return &TransferHandler{Operator: op}
}

// Register registers the endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/v1/ledger/transfer",
		Summary:     "Transfer",
		Description: "Moves funds between two accounts. Debit, credit, and both history records commit atomically.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.Transfer{
		SenderID:    input.Body.SenderID,
		RecipientID: input.Body.RecipientID,
		Amount:      input.Body.Amount,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httpError(err)
	}

	if logData != nil {
		logData.AddData("senderID", action.SenderID)
		logData.AddData("recipientID", action.RecipientID)
	}

	return &TransferOutput{Body: TransferResponse{RecipientName: action.RecipientName}}, nil
}
