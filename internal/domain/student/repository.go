package student

import "context"

// Repository persists students. Implementations return ErrNotFound for
// unknown ids and ErrDuplicateEmail when the unique email index is hit.
type Repository interface {
	List(ctx context.Context) ([]Student, error)
	Get(ctx context.Context, id int64) (*Student, error)
	Create(ctx context.Context, s *Student) (int64, error)
	Update(ctx context.Context, s *Student) error
	Delete(ctx context.Context, id int64) error
}
