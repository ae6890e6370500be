package actions

import (
	"context"

	"github.com/valuevault/bank-server/internal/storage"
	"github.com/valuevault/bank-server/internal/storage/account"
)

// Register creates a new account with zero balances. Password policy and
// hashing are the caller's responsibility; the store only ever sees the
// bcrypt digest.
type Register struct {
	ID           string
	PasswordHash string
	Name         string
}

func (r *Register) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Accounts.Insert(ctx, &account.AccountCreate{
		ID:           r.ID,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
	})
}
