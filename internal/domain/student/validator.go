package student

import (
	"fmt"

	"escuela/internal/utils/validation"
)

// Validate checks the required fields of a normalized student.
func (s Student) Validate() error {
	errs := validation.Struct(s)
	if len(errs) == 0 {
		return nil
	}

	fe := errs[0]
	var msg string
	switch fe.Tag {
	case "required":
		msg = fmt.Sprintf("%s is required", fe.Field)
	case "email":
		msg = fmt.Sprintf("%s must be a valid email", fe.Field)
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters", fe.Field, fe.Param)
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field)
	}

	return &DomainError{Err: ErrInvalidData, Message: msg, Field: fe.Field}
}
