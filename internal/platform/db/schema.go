package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the records table backing the entity store if it
// does not already exist. seq preserves insertion order per bucket, and
// replacing a document leaves its seq untouched.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS records (
    bucket TEXT NOT NULL,
    id TEXT NOT NULL,
    doc JSONB NOT NULL,
    seq BIGSERIAL,
    PRIMARY KEY (bucket, id)
);
CREATE INDEX IF NOT EXISTS records_bucket_seq_idx ON records (bucket, seq)`)
	if err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}
