package actions

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/storage/account"
	"github.com/valuevault/bank-server/internal/storage/record"
)

func TestTransfer_Success(t *testing.T) {
	writer, mockAccounts, mockRecords := newTestWriter(t)

	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "alice").
		Return(&account.Account{ID: "alice", Name: "Alice", Balance: 100}, nil)
	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "bob").
		Return(&account.Account{ID: "bob", Name: "Bob", Balance: 0}, nil)

	mockAccounts.EXPECT().UpdateBalances(mock.Anything, "alice", int64(0), int64(0)).Return(nil)
	mockAccounts.EXPECT().UpdateBalances(mock.Anything, "bob", int64(100), int64(0)).Return(nil)

	mockRecords.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *record.RecordCreate) bool {
		return c.AccountID == "alice" &&
			c.Type == ledger.RecordTransferOut &&
			c.Amount == 100 &&
			c.Counterparty == "bob"
	})).Return(nil)
	mockRecords.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *record.RecordCreate) bool {
		return c.AccountID == "bob" &&
			c.Type == ledger.RecordTransferIn &&
			c.Amount == 100 &&
			c.Counterparty == "alice"
	})).Return(nil)

	action := &Transfer{SenderID: "alice", RecipientID: "bob", Amount: 100}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, "Bob", action.RecipientName)
}

// The scenario behind the conservation rule: alice holds 100, deposits 50,
// then sends all 150 to bob. Afterwards alice holds 0 and bob holds 150.
func TestTransfer_ConservesTotal(t *testing.T) {
	balances := map[string]int64{"alice": 100, "bob": 0}

	writer, mockAccounts, mockRecords := newTestWriter(t)
	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*account.Account, error) {
			return &account.Account{ID: id, Name: id, Balance: balances[id]}, nil
		})
	mockAccounts.EXPECT().UpdateBalances(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string, balance, _ int64) error {
			balances[id] = balance
			return nil
		})
	mockRecords.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	deposit := &Deposit{AccountID: "alice", Amount: 50}
	assert.NoError(t, deposit.Perform(context.Background(), writer))

	transfer := &Transfer{SenderID: "alice", RecipientID: "bob", Amount: 150}
	assert.NoError(t, transfer.Perform(context.Background(), writer))

	assert.Equal(t, int64(0), balances["alice"])
	assert.Equal(t, int64(150), balances["bob"])
	assert.Equal(t, int64(150), balances["alice"]+balances["bob"])
}

func TestTransfer_RecipientNotFound(t *testing.T) {
	writer, mockAccounts, _ := newTestWriter(t)

	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "alice").
		Return(&account.Account{ID: "alice", Balance: 100}, nil)
	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "ghost").
		Return(nil, fmt.Errorf("find account: %w", ledger.ErrNotFound))

	action := &Transfer{SenderID: "alice", RecipientID: "ghost", Amount: 50}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrRecipientNotFound)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	writer, mockAccounts, _ := newTestWriter(t)

	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "alice").
		Return(&account.Account{ID: "alice", Balance: 10}, nil)
	mockAccounts.EXPECT().FindByIDForUpdate(mock.Anything, "bob").
		Return(&account.Account{ID: "bob", Balance: 0}, nil)

	action := &Transfer{SenderID: "alice", RecipientID: "bob", Amount: 50}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
}

func TestTransfer_SameAccount(t *testing.T) {
	writer, _, _ := newTestWriter(t)

	action := &Transfer{SenderID: "alice", RecipientID: "alice", Amount: 50}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrSameAccount)
}

func TestTransfer_NonPositiveAmount(t *testing.T) {
	writer, _, _ := newTestWriter(t)

	action := &Transfer{SenderID: "alice", RecipientID: "bob", Amount: -1}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}
