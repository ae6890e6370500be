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

// Deposit credits an account's main balance and appends a DEPOSIT record.
type Deposit struct {
	AccountID string
	Amount    int64

	// NewBalance is populated on success.
	NewBalance int64
}

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	if d.Amount <= 0 {
		return ledger.ErrInvalidAmount
	}

	acct, err := writer.Accounts.FindByIDForUpdate(ctx, d.AccountID)
	if err != nil {
		return err
	}

	newBalance := acct.Balance + d.Amount
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
		Type:        ledger.RecordDeposit,
		Amount:      d.Amount,
		Description: "deposit",
	})
	if err != nil {
		return err
	}

	d.NewBalance = newBalance
	return nil
}

func (d *Deposit) Announce(ctx context.Context, notifier notify.Notifier) {
	notifier.Notify(ctx, d.AccountID,
		"Your money has been deposited!",
		fmt.Sprintf("You have successfully deposited %d to your account", d.Amount))
}
