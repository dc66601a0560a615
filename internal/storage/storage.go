// Package storage implements the write-through persistence mirror for
// game state (spec §4.7, §6): a Store interface plus a Postgres-backed
// implementation. The registry is the authority; storage is best-effort.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by Load when no row exists for the given game id.
var ErrNotFound = errors.New("storage: game not found")

// Store is the persistence contract the registry depends on. Upsert writes
// the full serialized state blob for gameID; Load reads it back.
// Implementations need not be transactional across calls — the registry
// guarantees at most one in-flight apply per game_id.
type Store interface {
	Upsert(ctx context.Context, gameID string, blob []byte) error
	Load(ctx context.Context, gameID string) ([]byte, error)
	Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS quoridor_games (
	game_id    TEXT PRIMARY KEY,
	state      JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore is a Store backed by a Postgres table keyed by game_id,
// per spec §6 ("A relational table keyed by game_id storing the serialized
// state blob and timestamps suffices").
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Open connects to the database at url and ensures the backing table
// exists. Callers should treat a non-nil error as "run memory-only" per
// spec §4.7's graceful-degradation policy; Open itself does not decide
// that policy.
func Open(ctx context.Context, url string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("storage: connecting: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: pinging: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: migrating: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Upsert writes or replaces the serialized state for gameID.
func (s *PostgresStore) Upsert(ctx context.Context, gameID string, blob []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO quoridor_games (game_id, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (game_id) DO UPDATE SET state = $2, updated_at = now()`,
		gameID, blob)
	if err != nil {
		return fmt.Errorf("storage: upserting %s: %w", gameID, err)
	}
	return nil
}

// Load reads back the serialized state for gameID.
func (s *PostgresStore) Load(ctx context.Context, gameID string) ([]byte, error) {
	var blob []byte
	err := s.pool.QueryRow(ctx, `SELECT state FROM quoridor_games WHERE game_id = $1`, gameID).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: loading %s: %w", gameID, err)
	}
	return blob, nil
}
