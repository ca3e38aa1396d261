package kv

import (
	"context"
	"sync"
)

// MemoryStore is the in-process store backend. Each bucket keeps a map
// plus an insertion-order key slice so List is stable across the
// bucket's lifetime. All access is mutex-guarded: unlike the original
// host environment, the Go HTTP server does not serialize calls.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*memoryBucket
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*memoryBucket)}
}

func (s *MemoryStore) Bucket(name string) Bucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buckets[name]
	if !ok {
		b = &memoryBucket{docs: make(map[string][]byte)}
		s.buckets[name] = b
	}
	return b
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() {}

type memoryBucket struct {
	mu    sync.Mutex
	docs  map[string][]byte
	order []string
}

func (b *memoryBucket) Get(ctx context.Context, id string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	doc, ok := b.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, nil
}

func (b *memoryBucket) Put(ctx context.Context, id string, doc []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(doc))
	copy(cp, doc)
	if _, exists := b.docs[id]; !exists {
		b.order = append(b.order, id)
	}
	b.docs[id] = cp
	return nil
}

func (b *memoryBucket) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.docs[id]; !exists {
		return nil
	}
	delete(b.docs, id)
	for i, key := range b.order {
		if key == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

func (b *memoryBucket) List(ctx context.Context) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := make([]Entry, 0, len(b.order))
	for _, id := range b.order {
		doc := b.docs[id]
		cp := make([]byte, len(doc))
		copy(cp, doc)
		entries = append(entries, Entry{ID: id, Doc: cp})
	}
	return entries, nil
}
