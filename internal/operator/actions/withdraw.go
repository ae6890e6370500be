package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/notify"
	"github.com/valuevault/bank-server/internal/storage"
	"github.com/valuevault/bank-server/internal/storage/record"
)

// Withdraw debits an account's main balance and appends a WITHDRAW record.
// The balance never goes negative: an amount above the balance fails with
// ErrInsufficientFunds and writes nothing.
type Withdraw struct {
	AccountID string
	Amount    int64

	// NewBalance is populated on success.
	NewBalance int64
}

func (a *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Amount <= 0 {
		return ledger.ErrInvalidAmount
	}

	acct, err := writer.Accounts.FindByIDForUpdate(ctx, a.AccountID)
	if err != nil {
		return err
	}
	if acct.Balance < a.Amount {
		return ledger.ErrInsufficientFunds
	}

	newBalance := acct.Balance - a.Amount
	if err := writer.Accounts.UpdateBalances(ctx, acct.ID, newBalance, acct.InvestmentBalance); err != nil {
		return err
	}

	reference, err := uuid.NewV4()
	if err != nil {
		return err
	}
	err = writer.Records.Insert(ctx, &record.RecordCreate{
		Reference:   reference,
		AccountID:   acct.ID,
		Type:        ledger.RecordWithdraw,
		Amount:      a.Amount,
		Description: "withdrawal",
	})
	if err != nil {
		return err
	}

	a.NewBalance = newBalance
	return nil
}

func (a *Withdraw) Announce(ctx context.Context, notifier notify.Notifier) {
	notifier.Notify(ctx, a.AccountID,
		"Transaction completed, please take your money",
		fmt.Sprintf("You have withdrawn %d from your account", a.Amount))
}
