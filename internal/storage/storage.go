// Package storage persists named JSON documents on local disk or in an
// S3-compatible blob store. Both implementations satisfy the same contract,
// so callers behave identically regardless of the selected backend.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Load and Delete when no document exists under
// the given name.
var ErrNotFound = errors.New("document not found")

// Store is the document storage contract.
//
// Update applies a read-modify-write under a per-name lock so that concurrent
// updates to the same document do not silently overwrite each other within
// one process. The callback receives the current document bytes, or nil when
// the document does not exist yet, and returns the bytes to persist.
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Update(ctx context.Context, name string, fn func(current []byte) ([]byte, error)) error
}

// nameLocks hands out one mutex per document name
type nameLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newNameLocks() *nameLocks {
	return &nameLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *nameLocks) get(name string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[name]
	if !ok {
		m = &sync.Mutex{}
		l.locks[name] = m
	}
	return m
}

// update is the shared read-modify-write used by both backends
func update(ctx context.Context, s Store, locks *nameLocks, name string, fn func([]byte) ([]byte, error)) error {
	m := locks.get(name)
	m.Lock()
	defer m.Unlock()

	current, err := s.Load(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}
	return s.Save(ctx, name, next)
}
