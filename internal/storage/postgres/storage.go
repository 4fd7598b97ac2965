package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/burgerbot/internal/domain/errors"
	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// dbPool is the subset of pgxpool.Pool the store needs; pgxmock satisfies it
// in tests.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Storage persists session snapshots in PostgreSQL. One row per customer, the
// whole session as a JSONB document; the schema is exactly the session shape.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) initSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS sessions (
            customer_id TEXT PRIMARY KEY,
            snapshot JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`

	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Load returns the stored snapshot for the customer or ErrNotFound.
func (s *Storage) Load(ctx context.Context, customerID string) (*model.Session, error) {
	const query = `SELECT snapshot FROM sessions WHERE customer_id=$1`

	var raw []byte
	if err := s.pool.QueryRow(ctx, query, customerID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &sess, nil
}

// Save upserts the snapshot for the session's customer.
func (s *Storage) Save(ctx context.Context, sess *model.Session) error {
	const query = `INSERT INTO sessions (customer_id, snapshot, updated_at) VALUES ($1, $2, NOW())
                   ON CONFLICT (customer_id) DO UPDATE SET snapshot=EXCLUDED.snapshot, updated_at=NOW()`

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := s.pool.Exec(ctx, query, sess.CustomerID, raw); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot for the customer. Deleting a missing snapshot
// is not an error.
func (s *Storage) Delete(ctx context.Context, customerID string) error {
	const query = `DELETE FROM sessions WHERE customer_id=$1`

	if _, err := s.pool.Exec(ctx, query, customerID); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
