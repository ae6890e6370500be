package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/storage"
	"github.com/valuevault/bank-server/internal/storage/account"
)

func newAccountTestService(t *testing.T) (*AccountService, *account.MockIAccountReader) {
	t.Helper()
	mockAccounts := account.NewMockIAccountReader(t)
	store := &storage.Storage{Accounts: mockAccounts}
	svc := NewAccountService(store)
	return svc, mockAccounts
}

func makeStorageAccounts(n int, createdAt time.Time) []*account.Account {
	rows := make([]*account.Account, n)
	for i := range rows {
		rows[i] = &account.Account{
			ID:                "acct",
			Name:              "Alice",
			Balance:           100,
			InvestmentBalance: 25,
			CreatedAt:         createdAt,
		}
	}
	return rows
}

// -- GetBalance tests --

func TestGetBalance_Success(t *testing.T) {
	svc, mockAccounts := newAccountTestService(t)

	mockAccounts.EXPECT().FindByID(mock.Anything, "alice").
		Return(&account.Account{ID: "alice", Name: "Alice", Balance: 250, InvestmentBalance: 75}, nil)

	balance, err := svc.GetBalance(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, "alice", balance.AccountID)
	assert.Equal(t, int64(250), balance.Balance)
	assert.Equal(t, int64(75), balance.InvestmentBalance)
}

func TestGetBalance_NotFound(t *testing.T) {
	svc, mockAccounts := newAccountTestService(t)

	mockAccounts.EXPECT().FindByID(mock.Anything, "ghost").
		Return(nil, ledger.ErrNotFound)

	balance, err := svc.GetBalance(context.Background(), "ghost")

	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, balance)
}

// -- ListAccounts tests --

func TestListAccounts_DefaultCursor(t *testing.T) {
	svc, mockAccounts := newAccountTestService(t)

	rows := makeStorageAccounts(3, time.Now())
	mockAccounts.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *account.AccountFilter) bool {
		return f.Limit == defaultAccountLimit && f.Offset == 0
	})).Return(&account.AccountListResult{Accounts: rows}, nil)

	summaries, nextCursor, err := svc.ListAccounts(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, summaries, 3)
	assert.Nil(t, nextCursor)
}

func TestListAccounts_NextCursorPassedThrough(t *testing.T) {
	svc, mockAccounts := newAccountTestService(t)

	rows := makeStorageAccounts(2, time.Now())
	mockAccounts.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *account.AccountFilter) bool {
		return f.Limit == 2 && f.Offset == 4
	})).Return(&account.AccountListResult{
		Accounts:   rows,
		NextCursor: &account.AccountCursor{Position: 6, Limit: 2},
	}, nil)

	summaries, nextCursor, err := svc.ListAccounts(context.Background(), &AccountCursor{Position: 4, Limit: 2})

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, &AccountCursor{Position: 6, Limit: 2}, nextCursor)
}

func TestListAccounts_EmptyPage(t *testing.T) {
	svc, mockAccounts := newAccountTestService(t)

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).
		Return(&account.AccountListResult{}, nil)

	summaries, nextCursor, err := svc.ListAccounts(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Nil(t, nextCursor)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, mockAccounts := newAccountTestService(t)

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("select failed"))

	summaries, nextCursor, err := svc.ListAccounts(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, summaries)
	assert.Nil(t, nextCursor)
}
