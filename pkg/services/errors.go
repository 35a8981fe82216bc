package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned on duplicate creation attempts that
	// cannot be resolved by an attach fallback.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConcurrentModification is returned when every optimistic
	// version-checked write attempt lost to a concurrent writer.
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError carries a field-level contract violation; the HTTP
// layer maps it to a 400 and ingestion counts it as a rejection.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
