// Package sqlite provides a single-file durable store backend on
// modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/monisha-uniforms/storefront/internal/store"
)

// Store persists documents in one key/doc table.
type Store struct {
	db     *sql.DB
	bus    *store.Bus
	logger *slog.Logger
}

// Open creates or opens the database file and initializes the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc sqlite allows a single writer; serialize all access.
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS documents (
        key TEXT PRIMARY KEY,
        doc TEXT NOT NULL,
        updated_at TEXT NOT NULL
    )`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, bus: store.NewBus(), logger: logger}, nil
}

func (s *Store) Get(ctx context.Context, key store.Key) ([]byte, error) {
	const query = `SELECT doc FROM documents WHERE key = ?`
	var doc []byte
	err := s.db.QueryRowContext(ctx, query, string(key)).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) Set(ctx context.Context, key store.Key, doc []byte) error {
	const query = `INSERT INTO documents (key, doc, updated_at) VALUES (?, ?, ?)
                   ON CONFLICT(key) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, string(key), string(doc), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	s.bus.Publish(key)
	return nil
}

func (s *Store) Subscribe(key store.Key, fn func(store.Event)) func() {
	return s.bus.Subscribe(key, fn)
}

func (s *Store) Close() error {
	return s.db.Close()
}
