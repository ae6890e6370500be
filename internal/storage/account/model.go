package account

import (
	"context"
	"time"
)

// Account represents an account row. Balances are int64 amounts in the
// smallest currency unit; PasswordHash is a bcrypt digest, never the
// plaintext password.
type Account struct {
	ID                string    `db:"id"`
	PasswordHash      string    `db:"password_hash"`
	Name              string    `db:"name"`
	Balance           int64     `db:"balance"`
	InvestmentBalance int64     `db:"investment_balance"`
	CreatedAt         time.Time `db:"created_at"`
}

// AccountCreate is the input for registering a new account. Balances start
// at zero.
type AccountCreate struct {
	ID           string
	PasswordHash string
	Name         string
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// IAccountReader defines read access to the accounts table.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IAccountReader interface {
	FindByID(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
}

// IAccountWriter defines transactional write access to the accounts table.
// Row reads that precede a balance write go through FindByIDForUpdate so two
// concurrent ledger operations cannot both observe a stale balance.
type IAccountWriter interface {
	IAccountReader
	FindByIDForUpdate(ctx context.Context, id string) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) error
	UpdateBalances(ctx context.Context, id string, balance, investmentBalance int64) error
}
