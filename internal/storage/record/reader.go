package record

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// DefaultLimit caps history listing when the caller does not bound it.
const DefaultLimit = 50

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

var columns = []any{
	"id", "reference", "account_id", "type", "amount", "counterparty", "description", "created_at",
}

// ListByAccount returns the most recent entries first, bounded by limit.
func (r *Reader) ListByAccount(ctx context.Context, accountID string, limit int) ([]*Record, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.OrderBy("id").Desc(),
		sm.Limit(limit),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Record]())
	if err != nil {
		return nil, err
	}

	result := make([]*Record, len(rows))
	for i := range rows {
		row := rows[i]
		result[i] = &row
	}
	return result, nil
}
