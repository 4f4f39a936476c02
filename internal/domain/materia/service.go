package materia

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Servicer is the resource store over the materia collection. Every call
// loads the full document, transforms it in memory and, for mutations,
// writes the full next state back. No locking is done: concurrent writers
// race and the last full write wins.
type Servicer interface {
	List(ctx context.Context) ([]Materia, error)
	Get(ctx context.Context, id string) (Materia, bool, error)
	Create(ctx context.Context, in NewInput) (Materia, error)
	Update(ctx context.Context, id string, p Patch) (Materia, bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new materia service
func NewService(repo Repository, log *slog.Logger, opts ...Option) Servicer {
	s := &Service{
		repo: repo,
		log:  log.With("component", "materia_service"),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the full collection.
func (s *Service) List(ctx context.Context) ([]Materia, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the materia with the given id. A missing record is reported
// through the boolean, never as an error.
func (s *Service) Get(ctx context.Context, id string) (Materia, bool, error) {
	items, err := s.load(ctx)
	if err != nil {
		return Materia{}, false, err
	}

	if i := indexOf(items, id); i >= 0 {
		return items[i], true, nil
	}
	return Materia{}, false, nil
}

// Create validates the input before touching storage, then appends the new
// record and persists the whole collection.
func (s *Service) Create(ctx context.Context, in NewInput) (Materia, error) {
	m, err := New(in, s.timestamp())
	if err != nil {
		s.log.Debug("rejected materia", "error", err)
		return Materia{}, err
	}

	items, err := s.load(ctx)
	if err != nil {
		return Materia{}, err
	}

	if indexOf(items, m.ID) >= 0 {
		return Materia{}, &ValidationError{Field: "id", Message: fmt.Sprintf("ya existe una materia con id %s", m.ID)}
	}

	items = append(items, m)
	if err := s.repo.Save(ctx, items); err != nil {
		s.log.Error("failed to persist new materia", "id", m.ID, "error", err)
		return Materia{}, fmt.Errorf("create materia: %w", err)
	}

	s.log.Info("materia created", "id", m.ID, "total", len(items))
	return m, nil
}

// Update merges p into the stored record. An unknown id yields false and
// nothing is written.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Materia, bool, error) {
	items, err := s.load(ctx)
	if err != nil {
		return Materia{}, false, err
	}

	i := indexOf(items, id)
	if i < 0 {
		return Materia{}, false, nil
	}

	next, err := Merge(items[i], p, s.timestamp())
	if err != nil {
		return Materia{}, true, err
	}

	items[i] = next
	if err := s.repo.Save(ctx, items); err != nil {
		s.log.Error("failed to persist materia update", "id", id, "error", err)
		return Materia{}, true, fmt.Errorf("update materia: %w", err)
	}

	s.log.Info("materia updated", "id", id)
	return next, true, nil
}

// Remove drops the record with the given id. The document is written only
// when a record was actually removed.
func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	items, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]Materia, 0, len(items))
	for _, m := range items {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		s.log.Error("failed to persist materia removal", "id", id, "error", err)
		return false, fmt.Errorf("remove materia: %w", err)
	}

	s.log.Info("materia removed", "id", id, "total", len(kept))
	return true, nil
}

// load reads the collection and rebuilds every record through the domain
// rules, so callers only ever see valid records.
func (s *Service) load(ctx context.Context) ([]Materia, error) {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load materias", "error", err)
		return nil, fmt.Errorf("load materias: %w", err)
	}

	now := s.timestamp()
	items := make([]Materia, 0, len(raw))
	for i, r := range raw {
		r.applyDefaults(now)
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %v", ErrCorruptRecord, i, r.ID, err)
		}
		items = append(items, r)
	}
	return items, nil
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func indexOf(items []Materia, id string) int {
	for i, m := range items {
		if m.ID == id {
			return i
		}
	}
	return -1
}
