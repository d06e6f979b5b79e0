// Package userstore provides a process-wide, in-memory container mapping a
// user identifier to an append-only collection of items. Nothing is
// persisted; the store lives for the process lifetime.
package userstore

import (
	"context"
	"sync"
)

// Store keeps one partition per user id. It is safe for concurrent use by
// many request handlers without any caller-held lock: the first write for a
// new user id atomically creates its partition, so two concurrent first
// writers can never orphan each other's items.
//
// The empty string is a valid user id and, for string item types, a valid
// item. Items are never mutated or removed once added.
type Store[T any] struct {
	partitions sync.Map // user id -> *partition[T]
}

type partition[T any] struct {
	mu    sync.Mutex
	items []T
}

// New returns an empty store. The store is meant to be constructed once at
// the composition root and injected into every service that needs it.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// Add appends item to the user's partition and returns it unchanged, which
// lets call sites chain on the stored value without holding a separate
// reference. Ordering across concurrent writers is not guaranteed, but a
// completed Add is never lost.
func (s *Store[T]) Add(ctx context.Context, userID string, item T) (T, error) {
	actual, _ := s.partitions.LoadOrStore(userID, &partition[T]{})
	p := actual.(*partition[T])

	p.mu.Lock()
	p.items = append(p.items, item)
	p.mu.Unlock()

	return item, nil
}

// GetByUserID returns a snapshot of every item stored for userID. Unknown
// user ids yield an empty slice, never an error. The snapshot contains
// every Add that completed before the call began; an Add still in flight
// may or may not appear.
func (s *Store[T]) GetByUserID(ctx context.Context, userID string) ([]T, error) {
	actual, ok := s.partitions.Load(userID)
	if !ok {
		return []T{}, nil
	}
	p := actual.(*partition[T])

	p.mu.Lock()
	snapshot := make([]T, len(p.items))
	copy(snapshot, p.items)
	p.mu.Unlock()

	return snapshot, nil
}
