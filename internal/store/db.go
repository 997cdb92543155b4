package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by *sql.DB, *sql.Conn and *sql.Tx, allowing store code
// to work with a pool, a dedicated connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxBeginner starts transactions. Both *sql.DB and *sql.Conn satisfy it.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// ConnProvider hands out dedicated connections from a pool. Callers must
// Close the returned connection to release it.
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
	PingContext(ctx context.Context) error
}

var (
	_ DBTX         = (*sql.DB)(nil)
	_ DBTX         = (*sql.Conn)(nil)
	_ DBTX         = (*sql.Tx)(nil)
	_ TxBeginner   = (*sql.DB)(nil)
	_ TxBeginner   = (*sql.Conn)(nil)
	_ ConnProvider = (*sql.DB)(nil)
)
