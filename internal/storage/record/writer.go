package record

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert appends one log entry inside the surrounding ledger transaction.
func (w *Writer) Insert(ctx context.Context, create *RecordCreate) error {
	counterparty := sql.NullString{}
	if create.Counterparty != "" {
		counterparty = sql.NullString{String: create.Counterparty, Valid: true}
	}

	q := psql.Insert(
		im.Into("transactions", "reference", "account_id", "type", "amount", "counterparty", "description"),
		im.Values(psql.Arg(
			create.Reference,
			create.AccountID,
			string(create.Type),
			create.Amount,
			counterparty,
			create.Description,
		)),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
