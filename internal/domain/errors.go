package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks across package boundaries.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a rejected field value on a mutation. It is a
// local, recoverable condition: the store is left untouched.
type ValidationError struct {
	Field  string // Field that failed validation: "title", "content", etc.
	Reason string // Human-readable context
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports an operation that referenced an entity missing from
// the current store.
type NotFoundError struct {
	Kind string // Entity kind: "task", "project"
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: not found", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Kind)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
