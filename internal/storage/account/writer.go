package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/valuevault/bank-server/internal/ledger"
)

// uniqueViolation is the Postgres error code for a primary key collision.
const uniqueViolation = "23505"

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

// FindByIDForUpdate reads the account row under a row lock so concurrent
// ledger operations against the same account serialize at the store.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id string) (*Account, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Insert registers a new account with zero balances. A primary key
// collision surfaces as ledger.ErrDuplicateID.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) error {
	q := psql.Insert(
		im.Into("accounts", "id", "password_hash", "name", "balance", "investment_balance"),
		im.Values(psql.Arg(create.ID, create.PasswordHash, create.Name, 0, 0)),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ledger.ErrDuplicateID
		}
		return err
	}
	return nil
}

// UpdateBalances writes both sub-balances back for the account.
func (w *Writer) UpdateBalances(ctx context.Context, id string, balance, investmentBalance int64) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.SetCol("investment_balance").ToArg(investmentBalance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}
