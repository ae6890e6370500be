package actions

import (
	"context"

	"github.com/valuevault/bank-server/internal/notify"
	"github.com/valuevault/bank-server/internal/storage"
)

// IAction is one atomic ledger mutation. Perform runs inside a single
// storage transaction; every write it makes commits or rolls back together.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Announcer is implemented by actions that confirm completion to the account
// holder. Announce runs only after the transaction has committed.
type Announcer interface {
	Announce(ctx context.Context, notifier notify.Notifier)
}
