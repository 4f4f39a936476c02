package student

import "errors"

var (
	ErrNotFound       = errors.New("student not found")
	ErrInvalidData    = errors.New("invalid student data")
	ErrDuplicateEmail = errors.New("student email already registered")
	ErrIDMismatch     = errors.New("the student ID from the route must match the payload")
)

type DomainError struct {
	Err     error
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
