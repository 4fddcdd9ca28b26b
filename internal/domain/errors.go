package domain

import "errors"

// ValidationError marks caller mistakes (bad input) as opposed to storage or
// infrastructure failures. The HTTP layer maps it to a 4xx response.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError { return &ValidationError{msg: msg} }

func (e *ValidationError) Error() string { return e.msg }

// ErrEmptyText is returned when a review body is empty or whitespace-only.
var ErrEmptyText = NewValidationError("review text must not be empty")

// IsValidation reports whether err (or anything it wraps) is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
