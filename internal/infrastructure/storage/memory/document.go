// Package memory keeps a collection in process memory. It honours the same
// whole-document contract as the file-backed store and is used in tests and
// dry runs.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"escuela/internal/infrastructure/storage"
)

type Document[T any] struct {
	mu    sync.Mutex
	raw   []byte
	saves int
	err   error
}

// New returns a document that does not exist yet.
func New[T any]() *Document[T] {
	return &Document[T]{}
}

// Seed returns a document that already holds items.
func Seed[T any](items ...T) *Document[T] {
	d := New[T]()
	_ = d.Save(context.Background(), items)
	d.saves = 0
	return d
}

// FailWith makes every following Load and Save return err.
func (d *Document[T]) FailWith(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// Saves reports how many writes reached the document.
func (d *Document[T]) Saves() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saves
}

// Exists reports whether the document has been written at least once.
func (d *Document[T]) Exists() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw != nil
}

func (d *Document[T]) Load(ctx context.Context) ([]T, error) {
	d.mu.Lock()
	if d.err != nil {
		defer d.mu.Unlock()
		return nil, d.err
	}
	if d.raw == nil {
		d.mu.Unlock()
		if err := d.Save(ctx, nil); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	defer d.mu.Unlock()

	items := make([]T, 0)
	if err := json.Unmarshal(d.raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformedDocument, err)
	}
	return items, nil
}

// Save stores a serialized copy so callers can not mutate persisted state.
func (d *Document[T]) Save(_ context.Context, items []T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrIO, err)
	}
	d.raw = raw
	d.saves++
	return nil
}
