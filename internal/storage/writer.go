package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/valuevault/bank-server/internal/storage/account"
	"github.com/valuevault/bank-server/internal/storage/record"
)

// TxHandle is the transaction boundary of a Writer.
type TxHandle interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer bundles per-table writers behind one database transaction so a
// ledger operation's balance writes and log appends commit or roll back as
// a unit. Fields are interfaces so operator actions can be tested with
// mocks.
type Writer struct {
	Tx       TxHandle
	Accounts account.IAccountWriter
	Records  record.IRecordWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:       tx,
		Accounts: account.NewWriter(tx),
		Records:  record.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
