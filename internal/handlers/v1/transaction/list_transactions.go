package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/service"
)

// ListTransactionsInput is the Huma input for the transaction history.
type ListTransactionsInput struct {
	AccountID string `path:"id" doc:"Account id"`
	Limit     int    `query:"limit" minimum:"1" maximum:"50" doc:"Maximum entries to return, default 50"`
}

// ListTransactionsResponseBody is the response body for the transaction history.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"History entries, most recent first"`
}

// ListTransactionsOutput is the Huma output for the transaction history.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// historyReader is the interface for reading an account's history.
type historyReader interface {
	ListTransactions(ctx context.Context, accountID string, limit int) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/accounts/{id}/transactions.
type ListTransactionsHandler struct {
	TransactionService historyReader
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc historyReader) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}/transactions",
		Summary:     "Transaction history",
		Description: "Returns the account's ledger entries, most recent first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, input.AccountID, input.Limit)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "account not found", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read transactions", err)
	}

	if logData != nil {
		logData.AddData("accountID", input.AccountID)
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, txn := range transactions {
		resp.Transactions[i] = Transaction{
			Reference:    txn.Reference.String(),
			Type:         string(txn.Type),
			Amount:       txn.Amount,
			Counterparty: txn.Counterparty,
			Description:  txn.Description,
			CreatedAt:    txn.CreatedAt,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
