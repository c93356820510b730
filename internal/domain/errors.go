package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmpty      = errors.New("no records found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError lists the offending fields of a payload, keyed by their
// JSON name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return ErrValidation.Error() + " (" + strings.Join(parts, ", ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
