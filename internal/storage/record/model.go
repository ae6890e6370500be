// Package record persists the append-only transaction log. Rows are written
// once by ledger operations and never updated or deleted.
package record

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/valuevault/bank-server/internal/ledger"
)

// Record is one immutable entry in an account's transaction history.
type Record struct {
	ID           int64             `db:"id"`
	Reference    uuid.UUID         `db:"reference"`
	AccountID    string            `db:"account_id"`
	Type         ledger.RecordType `db:"type"`
	Amount       int64             `db:"amount"`
	Counterparty sql.NullString    `db:"counterparty"`
	Description  string            `db:"description"`
	CreatedAt    time.Time         `db:"created_at"`
}

// RecordCreate is the input for appending a log entry.
type RecordCreate struct {
	Reference    uuid.UUID
	AccountID    string
	Type         ledger.RecordType
	Amount       int64
	Counterparty string // empty means no counterparty
	Description  string
}

// IRecordReader defines read access to the transaction log.
type IRecordReader interface {
	ListByAccount(ctx context.Context, accountID string, limit int) ([]*Record, error)
}

// IRecordWriter defines transactional append access to the transaction log.
type IRecordWriter interface {
	Insert(ctx context.Context, create *RecordCreate) error
}
