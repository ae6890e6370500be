package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/notify"
	"github.com/valuevault/bank-server/internal/storage"
	"github.com/valuevault/bank-server/internal/storage/record"
)

// Transfer moves funds between two accounts: debit, credit, and both log
// entries are one transaction, so money can neither vanish nor duplicate
// part-way through.
type Transfer struct {
	SenderID    string
	RecipientID string
	Amount      int64

	// RecipientName is populated on success for the confirmation message.
	RecipientName string
}

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.Amount <= 0 {
		return ledger.ErrInvalidAmount
	}
	if t.SenderID == t.RecipientID {
		return ledger.ErrSameAccount
	}

	// Lock in a fixed order keyed by id so two opposing transfers cannot
	// deadlock each other.
	firstID, secondID := t.SenderID, t.RecipientID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	locked := make(map[string]*LockedAccount, 2)
	for _, id := range []string{firstID, secondID} {
		acct, err := writer.Accounts.FindByIDForUpdate(ctx, id)
		if err != nil {
			if id == t.RecipientID && errors.Is(err, ledger.ErrNotFound) {
				return ledger.ErrRecipientNotFound
			}
			return err
		}
		locked[id] = &LockedAccount{
			Name:              acct.Name,
			Balance:           acct.Balance,
			InvestmentBalance: acct.InvestmentBalance,
		}
	}

	sender := locked[t.SenderID]
	recipient := locked[t.RecipientID]

	if sender.Balance < t.Amount {
		return ledger.ErrInsufficientFunds
	}

	err := writer.Accounts.UpdateBalances(ctx, t.SenderID, sender.Balance-t.Amount, sender.InvestmentBalance)
	if err != nil {
		return err
	}
	err = writer.Accounts.UpdateBalances(ctx, t.RecipientID, recipient.Balance+t.Amount, recipient.InvestmentBalance)
	if err != nil {
		return err
	}

	reference, err := uuid.NewV4()
	if err != nil {
		return err
	}
	err = writer.Records.Insert(ctx, &record.RecordCreate{
		Reference:    reference,
		AccountID:    t.SenderID,
		Type:         ledger.RecordTransferOut,
		Amount:       t.Amount,
		Counterparty: t.RecipientID,
		Description:  "transfer to " + t.RecipientID,
	})
	if err != nil {
		return err
	}
	err = writer.Records.Insert(ctx, &record.RecordCreate{
		Reference:    reference,
		AccountID:    t.RecipientID,
		Type:         ledger.RecordTransferIn,
		Amount:       t.Amount,
		Counterparty: t.SenderID,
		Description:  "transfer from " + t.SenderID,
	})
	if err != nil {
		return err
	}

	t.RecipientName = recipient.Name
	return nil
}

func (t *Transfer) Announce(ctx context.Context, notifier notify.Notifier) {
	notifier.Notify(ctx, t.SenderID,
		"Money transfer successful!",
		fmt.Sprintf("You have successfully transferred %d to %s's account", t.Amount, t.RecipientName))
}

// LockedAccount is the snapshot taken under the row lock.
type LockedAccount struct {
	Name              string
	Balance           int64
	InvestmentBalance int64
}
