package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/valuevault/bank-server/internal/config"
	"github.com/valuevault/bank-server/internal/storage/account"
	"github.com/valuevault/bank-server/internal/storage/record"
)

// Storage owns the database handle. It is constructed once at process start
// and closed at shutdown; nothing else holds a connection.
type Storage struct {
	db  *sql.DB
	bdb bob.DB

	Accounts account.IAccountReader
	Records  record.IRecordReader
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	bdb := bob.NewDB(db)
	return &Storage{
		db:       db,
		bdb:      bdb,
		Accounts: account.NewReader(bdb),
		Records:  record.NewReader(bdb),
	}, nil
}

// Write begins a transaction and returns a Writer scoped to it. The caller
// must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

// Ping reports database reachability for the status endpoint.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
