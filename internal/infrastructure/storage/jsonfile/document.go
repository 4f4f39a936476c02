// Package jsonfile persists a collection as one JSON array in one file.
// Every operation moves the whole document: reads load all of it and writes
// replace all of it.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"escuela/internal/infrastructure/storage"

	"github.com/moby/sys/atomicwriter"
	"golang.org/x/exp/slog"
)

const filePerm = 0o644

type Document[T any] struct {
	path string
	log  *slog.Logger
}

func New[T any](path string, log *slog.Logger) *Document[T] {
	return &Document[T]{
		path: path,
		log:  log.With("component", "jsonfile", "path", path),
	}
}

// Path returns the location of the backing file.
func (d *Document[T]) Path() string {
	return d.path
}

// Load reads the full collection. A missing file is initialized to an empty
// array and reported as an empty collection.
func (d *Document[T]) Load(ctx context.Context) ([]T, error) {
	content, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.log.Debug("document missing, initializing empty collection")
			if err := d.Save(ctx, nil); err != nil {
				return nil, err
			}
			return []T{}, nil
		}
		d.log.Error("failed to read document", "error", err)
		return nil, fmt.Errorf("%w: read %s: %v", storage.ErrIO, d.path, err)
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %s is not a JSON array", storage.ErrMalformedDocument, d.path)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", storage.ErrMalformedDocument, d.path, err)
	}

	return items, nil
}

// Save replaces the document with items in a single atomic write.
func (d *Document[T]) Save(_ context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", storage.ErrIO, d.path, err)
	}

	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir %s: %v", storage.ErrIO, dir, err)
		}
	}

	if err := atomicwriter.WriteFile(d.path, data, filePerm); err != nil {
		d.log.Error("failed to write document", "error", err)
		return fmt.Errorf("%w: write %s: %v", storage.ErrIO, d.path, err)
	}

	d.log.Debug("document saved", "items", len(items))
	return nil
}
