package student

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAge            = errors.New("invalid age")
	ErrInvalidEnrollmentCode = errors.New("invalid enrollment code")
	ErrInvalidClassName      = errors.New("invalid class name")
	ErrStudentNotFound       = errors.New("student not found")
)

// ValidationError reports which rule a field value broke.
// Kind is one of the ErrInvalid* sentinels, so callers branch with errors.Is.
type ValidationError struct {
	Kind    error
	Field   string
	Value   any
	Message string
	Err     error // validator detail, optional
}

// Error returns the message alone; it already names the broken constraint.
func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Kind)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

func (e *ValidationError) Is(target error) bool {
	return e.Kind != nil && errors.Is(e.Kind, target)
}

// IsValidation reports whether err came from a rejected field value.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
