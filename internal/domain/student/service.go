package student

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Student, error)
	Get(ctx context.Context, id int64) (*Student, error)
	Create(ctx context.Context, s Student) (*Student, error)
	Update(ctx context.Context, id int64, s Student) (*Student, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new student service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "student_service"),
		now:  time.Now,
	}
}

// List returns students ordered by paternal, maternal and first name.
func (s *Service) List(ctx context.Context) ([]Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list students", "error", err)
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Student, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get student", "student_id", id, "error", err)
		return nil, fmt.Errorf("get student: %w", err)
	}
	return st, nil
}

func (s *Service) Create(ctx context.Context, in Student) (*Student, error) {
	in.ID = 0
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	id, err := s.repo.Create(ctx, &in)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		s.log.Error("failed to create student", "email", in.Email, "error", err)
		return nil, fmt.Errorf("create student: %w", err)
	}
	in.ID = id

	s.log.Info("student created", "student_id", id)
	return &in, nil
}

// Update replaces every editable field of the stored student. The id in the
// payload, when set, must match the route id.
func (s *Service) Update(ctx context.Context, id int64, in Student) (*Student, error) {
	if in.ID != 0 && in.ID != id {
		return nil, ErrIDMismatch
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ID = id
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.CreatedAt = current.CreatedAt
	in.UpdatedAt = s.now().UTC()
	if in.UpdatedAt.Before(in.CreatedAt) {
		in.UpdatedAt = in.CreatedAt
	}

	if err := s.repo.Update(ctx, &in); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		}
		s.log.Error("failed to update student", "student_id", id, "error", err)
		return nil, fmt.Errorf("update student: %w", err)
	}

	s.log.Info("student updated", "student_id", id)
	return &in, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete student", "student_id", id, "error", err)
		return fmt.Errorf("delete student: %w", err)
	}

	s.log.Info("student deleted", "student_id", id)
	return nil
}
