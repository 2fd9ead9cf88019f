package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// venue, artist, or show does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unparseable show time).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConstraint is returned when the store rejects a write: a dangling foreign
// key, a value wider than its column, or any other integrity violation.
// The write has been rolled back by the time the caller sees this error.
var ErrConstraint = errors.New("constraint violation")

// ValidationError carries field-level messages keyed by form field name
// (e.g. "name" -> "name is required"). It matches ErrValidation via errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// Is reports ErrValidation as a match so callers can use errors.Is without
// caring about the concrete type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
