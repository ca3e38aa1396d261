package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the durable store backend. All buckets live in one
// records table; seq is assigned on first insert and untouched on
// replace, so enumeration order matches insertion order.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Bucket(name string) Bucket {
	return &postgresBucket{pool: s.pool, name: name}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Pool exposes the underlying pool for health reporting.
func (s *PostgresStore) Pool() *pgxpool.Pool { return s.pool }

type postgresBucket struct {
	pool *pgxpool.Pool
	name string
}

func (b *postgresBucket) Get(ctx context.Context, id string) ([]byte, error) {
	var doc []byte
	err := b.pool.QueryRow(ctx,
		`SELECT doc FROM records WHERE bucket = $1 AND id = $2`, b.name, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (b *postgresBucket) Put(ctx context.Context, id string, doc []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO records (bucket, id, doc) VALUES ($1, $2, $3)
		ON CONFLICT (bucket, id) DO UPDATE SET doc = EXCLUDED.doc`,
		b.name, id, doc)
	return err
}

func (b *postgresBucket) Delete(ctx context.Context, id string) error {
	_, err := b.pool.Exec(ctx,
		`DELETE FROM records WHERE bucket = $1 AND id = $2`, b.name, id)
	return err
}

func (b *postgresBucket) List(ctx context.Context) ([]Entry, error) {
	rows, err := b.pool.Query(ctx,
		`SELECT id, doc FROM records WHERE bucket = $1 ORDER BY seq`, b.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Doc); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
