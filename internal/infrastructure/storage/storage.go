package storage

import (
	"context"
	"errors"
)

var (
	// ErrIO is returned when the backing document can not be read or written
	// for any reason other than it being absent.
	ErrIO = errors.New("storage i/o failure")
	// ErrMalformedDocument is returned when the persisted content is not a valid JSON array.
	ErrMalformedDocument = errors.New("malformed document")
)

// Document is a whole-document collection store: every Load returns the full
// collection and every Save replaces it.
type Document[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
}
