package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrUpstream marks a non-success HTTP outcome from the listing service.
	ErrUpstream = errors.New("upstream request failed")

	// ErrUpstreamContract marks a success response whose body does not have
	// the expected envelope shape.
	ErrUpstreamContract = errors.New("upstream response malformed")

	// ErrUnavailable is returned when the upstream is not being called at
	// all, e.g. while the circuit breaker is open.
	ErrUnavailable = errors.New("unavailable")
)

// Common validation messages.
const (
	MsgRequired    = "is required"
	MsgNonNegative = "must be a non-negative number"
	MsgNotANumber  = "must be a number"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
