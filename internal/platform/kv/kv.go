// Package kv is the entity store: one insertion-ordered key-value
// bucket per entity type. Repositories own the JSON encoding of their
// models; buckets only see opaque documents.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("kv: key not found")

// Entry is one document with its key, yielded by List in insertion order.
type Entry struct {
	ID  string
	Doc []byte
}

// Bucket is an ordered key-value namespace. Put is insert-or-replace;
// replacing a key keeps its original position in the enumeration order.
type Bucket interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, doc []byte) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Entry, error)
}

// Store hands out named buckets over a shared substrate.
type Store interface {
	Bucket(name string) Bucket
	Ping(ctx context.Context) error
	Close()
}
