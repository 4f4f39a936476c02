package materia

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidData is the root of every validation failure.
	ErrInvalidData = errors.New("invalid materia data")
	// ErrCorruptRecord marks a persisted record that no longer passes validation.
	ErrCorruptRecord = errors.New("corrupt materia record")
)

// ValidationError reports bad caller input. It is recoverable: nothing was written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}
