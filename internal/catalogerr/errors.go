// Package catalogerr defines the error kinds surfaced by the catalog
// services: lookups that miss, rejected mutations, and an unreachable
// store. Handlers classify them with errors.As.
package catalogerr

import (
	"fmt"
	"sort"
	"strings"
)

// sorted so the message is stable regardless of map iteration order
func joinSorted(msgs []string) string {
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// NotFoundError signals a direct lookup of a specific id that matched
// nothing. Not fatal to the process.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ValidationError rejects a mutation before any persistence: a required
// field is missing or malformed.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for field, msg := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + joinSorted(msgs)
}

// NewValidation builds a single-field ValidationError.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Errors: map[string]string{field: reason}}
}

// ReferenceError rejects a mutation whose relation id does not resolve
// to an existing record.
type ReferenceError struct {
	Kind string
	ID   string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s does not exist: %s", e.Kind, e.ID)
}

// StoreUnavailableError means the persistence medium could not be
// reached. Surfaced to the caller, never retried automatically.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
