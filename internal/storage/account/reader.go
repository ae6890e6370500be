package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/valuevault/bank-server/internal/ledger"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

var columns = []any{
	"id", "password_hash", "name", "balance", "investment_balance", "created_at",
}

func (r *Reader) FindByID(ctx context.Context, id string) (*Account, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	limit := 20
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	q := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(limit+1),
		sm.Offset(offset),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &AccountListResult{Accounts: nil, NextCursor: nil}, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		row := rows[i]
		result[i] = &row
	}
	return &AccountListResult{Accounts: result, NextCursor: nextCursor}, nil
}
