// Package postgres persists orders, positions, and execution logs in
// PostgreSQL. It implements the order store, position reader, and execution
// log writer ports.
package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id UUID PRIMARY KEY,
	pipeline_id BIGINT NOT NULL,
	symbol TEXT NOT NULL,
	market TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity NUMERIC NOT NULL,
	price NUMERIC NOT NULL,
	status TEXT NOT NULL,
	exchange_order_id TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	id UUID PRIMARY KEY,
	pipeline_id BIGINT NOT NULL,
	buy_order_id UUID NOT NULL REFERENCES orders(id),
	symbol TEXT NOT NULL,
	entry_price NUMERIC NOT NULL,
	quantity NUMERIC NOT NULL,
	status TEXT NOT NULL,
	opened_at TIMESTAMPTZ NOT NULL,
	closed_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_positions_pipeline_status ON positions (pipeline_id, status);

CREATE TABLE IF NOT EXISTS execution_logs (
	id BIGSERIAL PRIMARY KEY,
	pipeline_id BIGINT NOT NULL,
	execution_id TEXT NOT NULL,
	step_key TEXT NOT NULL,
	outcome TEXT NOT NULL,
	message TEXT NOT NULL,
	context_snapshot JSONB NOT NULL,
	started_at TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_execution_logs_pipeline ON execution_logs (pipeline_id, started_at);
`

// querier is the subset of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store holds the connection pool. It is safe for concurrent use.
type Store struct {
	pool   *pgxpool.Pool
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewStore connects to the database and verifies connectivity. Decimal
// columns are mapped to shopspring decimals on every connection.
func NewStore(ctx context.Context, dbURL string, log *logger.Logger) (*Store, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to parse database URL", err)
	}

	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to create connection pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to ping database", err)
	}

	return &Store{
		pool:   pool,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Migrate creates the tables and indexes if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to run migrations", err)
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
