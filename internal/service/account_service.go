package service

import (
	"context"

	"github.com/valuevault/bank-server/internal/storage"
	"github.com/valuevault/bank-server/internal/storage/account"
)

const defaultAccountLimit = 20

// AccountService handles account reads: balance lookup and the
// administrative listing.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// Balance is a point-in-time read of both sub-balances.
type Balance struct {
	AccountID         string
	Name              string
	Balance           int64
	InvestmentBalance int64
}

// GetBalance re-reads the store on every call; nothing in memory is trusted.
func (s *AccountService) GetBalance(ctx context.Context, id string) (*Balance, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Balance{
		AccountID:         row.ID,
		Name:              row.Name,
		Balance:           row.Balance,
		InvestmentBalance: row.InvestmentBalance,
	}, nil
}

// AccountSummary is one row of the administrative listing.
type AccountSummary struct {
	ID      string
	Name    string
	Balance int64
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// ListAccounts returns a page of (id, name, balance) rows using cursor
// pagination. Access control is the caller's concern.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]AccountSummary, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &account.AccountFilter{
		Limit:  limit,
		Offset: offset,
	}

	result, err := s.storage.Accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(result.Accounts) == 0 {
		return nil, nil, nil
	}

	summaries := make([]AccountSummary, len(result.Accounts))
	for i, row := range result.Accounts {
		summaries[i] = AccountSummary{
			ID:      row.ID,
			Name:    row.Name,
			Balance: row.Balance,
		}
	}

	var nextCursor *AccountCursor
	if result.NextCursor != nil {
		nextCursor = &AccountCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	return summaries, nextCursor, nil
}
