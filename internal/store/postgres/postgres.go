// Package postgres provides the PostgreSQL store backend.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/monisha-uniforms/storefront/internal/store"
)

// pgxPool is the pool subset the store needs; pgxmock satisfies it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Store persists documents in one key/doc table.
type Store struct {
	pool   pgxPool
	bus    *store.Bus
	logger *slog.Logger
}

// New connects to the database and initializes the schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	s := &Store{pool: pool, bus: store.NewBus(), logger: logger}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `CREATE TABLE IF NOT EXISTS documents (
        key TEXT PRIMARY KEY,
        doc JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key store.Key) ([]byte, error) {
	const query = `SELECT doc FROM documents WHERE key=$1`
	var doc []byte
	err := s.pool.QueryRow(ctx, query, string(key)).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) Set(ctx context.Context, key store.Key, doc []byte) error {
	const query = `INSERT INTO documents (key, doc, updated_at) VALUES ($1, $2, NOW())
                   ON CONFLICT (key) DO UPDATE SET doc=excluded.doc, updated_at=NOW()`
	if _, err := s.pool.Exec(ctx, query, string(key), doc); err != nil {
		return err
	}
	s.bus.Publish(key)
	return nil
}

func (s *Store) Subscribe(key store.Key, fn func(store.Event)) func() {
	return s.bus.Subscribe(key, fn)
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
