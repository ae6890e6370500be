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

// MoveFunds shifts money between an account's main balance and its
// investment sub-balance. The sufficiency rule applies to whichever
// sub-balance is the source.
type MoveFunds struct {
	AccountID string
	Direction ledger.Direction
	Amount    int64

	// NewBalance and NewInvestmentBalance are populated on success.
	NewBalance           int64
	NewInvestmentBalance int64
}

func (m *MoveFunds) Perform(ctx context.Context, writer *storage.Writer) error {
	if m.Amount <= 0 {
		return ledger.ErrInvalidAmount
	}
	if !m.Direction.Valid() {
		return ledger.ErrInvalidAmount
	}

	acct, err := writer.Accounts.FindByIDForUpdate(ctx, m.AccountID)
	if err != nil {
		return err
	}

	balance := acct.Balance
	investment := acct.InvestmentBalance
	recordType := ledger.RecordTransferOut
	description := "investment sweep"

	switch m.Direction {
	case ledger.ToInvestment:
		if balance < m.Amount {
			return ledger.ErrInsufficientFunds
		}
		balance -= m.Amount
		investment += m.Amount
	case ledger.ToMain:
		if investment < m.Amount {
			return ledger.ErrInsufficientFunds
		}
		investment -= m.Amount
		balance += m.Amount
		recordType = ledger.RecordTransferIn
		description = "investment redemption"
	}

	if err := writer.Accounts.UpdateBalances(ctx, acct.ID, balance, investment); err != nil {
		return err
	}

	reference, err := uuid.NewV4()
	if err != nil {
		return err
	}
	err = writer.Records.Insert(ctx, &record.RecordCreate{
		Reference:   reference,
		AccountID:   acct.ID,
		Type:        recordType,
		Amount:      m.Amount,
		Description: description,
	})
	if err != nil {
		return err
	}

	m.NewBalance = balance
	m.NewInvestmentBalance = investment
	return nil
}

func (m *MoveFunds) Announce(ctx context.Context, notifier notify.Notifier) {
	notifier.Notify(ctx, m.AccountID,
		"Funds moved",
		fmt.Sprintf("Moved %d between your balance and investment account", m.Amount))
}
