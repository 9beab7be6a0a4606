package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easeaico/project-texas/internal/mood"
)

// ErrKeyNotFound is returned by a KV when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is a generic point-read/point-write store with per-key atomic replace.
// Replace succeeds only when the stored version matches expect (0 for a key
// that does not exist yet) and fails with mood.ErrStaleRecord otherwise.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, version int64, err error)
	Replace(ctx context.Context, key string, value []byte, expect int64) error
}

// PgxKV implements KV on a state_kv table.
type PgxKV struct {
	pool *pgxpool.Pool
}

// NewPgxKV returns a KV backed by the given pool.
func NewPgxKV(pool *pgxpool.Pool) *PgxKV {
	return &PgxKV{pool: pool}
}

// Get reads the value and its version for a key.
func (s *PgxKV) Get(ctx context.Context, key string) ([]byte, int64, error) {
	var value []byte
	var version int64
	row := s.pool.QueryRow(ctx, `SELECT value, version FROM state_kv WHERE key = $1`, key)
	if err := row.Scan(&value, &version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrKeyNotFound
		}
		return nil, 0, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, version, nil
}

// Replace atomically swaps the value when the version matches. A missing key
// is created when expect is 0.
func (s *PgxKV) Replace(ctx context.Context, key string, value []byte, expect int64) error {
	query := `
		INSERT INTO state_kv (key, value, version)
		VALUES ($1, $2, 1)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, version = state_kv.version + 1
		WHERE state_kv.version = $3`
	result, err := s.pool.Exec(ctx, query, key, value, expect)
	if err != nil {
		return fmt.Errorf("failed to replace key %s: %w", key, err)
	}
	if result.RowsAffected() == 0 {
		return mood.ErrStaleRecord
	}
	return nil
}
