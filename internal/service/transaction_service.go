package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/storage"
)

// TransactionService serves the per-account transaction history.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// Transaction represents a history entry in the service layer.
type Transaction struct {
	Reference    uuid.UUID
	AccountID    string
	Type         ledger.RecordType
	Amount       int64
	Counterparty string
	Description  string
	CreatedAt    time.Time
}

// ListTransactions returns the account's history, most recent first, bounded
// by limit (default 50). Unknown accounts fail with ledger.ErrNotFound.
func (s *TransactionService) ListTransactions(ctx context.Context, accountID string, limit int) ([]Transaction, error) {
	if _, err := s.storage.Accounts.FindByID(ctx, accountID); err != nil {
		return nil, err
	}

	rows, err := s.storage.Records.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		counterparty := ""
		if row.Counterparty.Valid {
			counterparty = row.Counterparty.String
		}
		transactions[i] = Transaction{
			Reference:    row.Reference,
			AccountID:    row.AccountID,
			Type:         row.Type,
			Amount:       row.Amount,
			Counterparty: counterparty,
			Description:  row.Description,
			CreatedAt:    row.CreatedAt,
		}
	}
	return transactions, nil
}
