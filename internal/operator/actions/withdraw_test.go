package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/storage/account"
	"github.com/valuevault/bank-server/internal/storage/record"
)

func TestWithdraw_Success(t *testing.T) {
	writer, mockAccounts, mockRecords := newTestWriter(t)

	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "alice").
		Return(&account.Account{ID: "alice", Balance: 150, InvestmentBalance: 10}, nil)
	mockAccounts.EXPECT().UpdateBalances(mock.Anything, "alice", int64(0), int64(10)).
		Return(nil)
	mockRecords.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *record.RecordCreate) bool {
		return c.AccountID == "alice" &&
			c.Type == ledger.RecordWithdraw &&
			c.Amount == 150
	})).Return(nil)

	action := &Withdraw{AccountID: "alice", Amount: 150}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), action.NewBalance)
}

// Depositing then withdrawing the same amount restores the starting balance.
func TestWithdraw_ReversesDeposit(t *testing.T) {
	balance := int64(100)
	saveBalance := func(_ context.Context, _ string, b int64, _ int64) error {
		balance = b
		return nil
	}

	writer, mockAccounts, mockRecords := newTestWriter(t)
	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "alice").
		RunAndReturn(func(_ context.Context, id string) (*account.Account, error) {
			return &account.Account{ID: id, Balance: balance}, nil
		})
	mockAccounts.EXPECT().UpdateBalances(mock.Anything, "alice", mock.Anything, mock.Anything).
		RunAndReturn(saveBalance)
	mockRecords.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	deposit := &Deposit{AccountID: "alice", Amount: 40}
	assert.NoError(t, deposit.Perform(context.Background(), writer))
	assert.Equal(t, int64(140), balance)

	withdraw := &Withdraw{AccountID: "alice", Amount: 40}
	assert.NoError(t, withdraw.Perform(context.Background(), writer))
	assert.Equal(t, int64(100), balance)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	writer, mockAccounts, _ := newTestWriter(t)

	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "alice").
		Return(&account.Account{ID: "alice", Balance: 30}, nil)

	action := &Withdraw{AccountID: "alice", Amount: 31}
	err := action.Perform(context.Background(), writer)

	// No UpdateBalances or Insert expectations: a failed withdrawal must
	// not touch the store.
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
}

func TestWithdraw_ExactBalanceAllowed(t *testing.T) {
	writer, mockAccounts, mockRecords := newTestWriter(t)

	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "alice").
		Return(&account.Account{ID: "alice", Balance: 30}, nil)
	mockAccounts.EXPECT().UpdateBalances(mock.Anything, "alice", int64(0), int64(0)).
		Return(nil)
	mockRecords.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	action := &Withdraw{AccountID: "alice", Amount: 30}
	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestWithdraw_NonPositiveAmount(t *testing.T) {
	writer, _, _ := newTestWriter(t)

	action := &Withdraw{AccountID: "alice", Amount: 0}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}
