package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/service"
)

type mockHistoryReader struct {
	mock.Mock
}

func (m *mockHistoryReader) ListTransactions(ctx context.Context, accountID string, limit int) ([]service.Transaction, error) {
	args := m.Called(ctx, accountID, limit)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newHistoryTestAPI(t *testing.T, svc historyReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	reference := uuid.Must(uuid.NewV4())

	svc := new(mockHistoryReader)
	svc.On("ListTransactions", mock.Anything, "alice", 0).
		Return([]service.Transaction{
			{
				Reference:    reference,
				AccountID:    "alice",
				Type:         ledger.RecordTransferOut,
				Amount:       40,
				Counterparty: "bob",
				Description:  "transfer to bob",
				CreatedAt:    now,
			},
			{
				Reference:   uuid.Must(uuid.NewV4()),
				AccountID:   "alice",
				Type:        ledger.RecordDeposit,
				Amount:      100,
				Description: "deposit",
				CreatedAt:   now.Add(-time.Minute),
			},
		}, nil)

	resp := newHistoryTestAPI(t, svc).Get("/v1/accounts/alice/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, reference.String(), body.Transactions[0].Reference)
	assert.Equal(t, "TRANSFER_OUT", body.Transactions[0].Type)
	assert.Equal(t, "bob", body.Transactions[0].Counterparty)
	assert.Empty(t, body.Transactions[1].Counterparty)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_LimitPassedThrough(t *testing.T) {
	svc := new(mockHistoryReader)
	svc.On("ListTransactions", mock.Anything, "alice", 5).
		Return(([]service.Transaction)(nil), nil)

	resp := newHistoryTestAPI(t, svc).Get("/v1/accounts/alice/transactions?limit=5")

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_RejectsOversizeLimit(t *testing.T) {
	svc := new(mockHistoryReader)

	// The schema cap matches what the store will actually return.
	resp := newHistoryTestAPI(t, svc).Get("/v1/accounts/alice/transactions?limit=51")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_ListTransactions_AccountNotFound(t *testing.T) {
	svc := new(mockHistoryReader)
	svc.On("ListTransactions", mock.Anything, "ghost", 0).
		Return(nil, ledger.ErrNotFound)

	resp := newHistoryTestAPI(t, svc).Get("/v1/accounts/ghost/transactions")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
