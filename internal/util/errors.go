package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common error values shared across the engine and the CLI
var (
	// ErrCancelled marks work stopped by cooperative cancellation; the
	// executor treats it as a terminal state, never as a failure
	ErrCancelled = errors.New("operation cancelled")

	// ErrTimeout indicates a unit of work exceeded its caller-set deadline
	ErrTimeout = errors.New("operation timed out")

	// ErrInvalidLimit indicates a concurrency limit rejected at the outer
	// surface (CLI flag validation); the resolver itself never raises it
	ErrInvalidLimit = errors.New("invalid concurrency limit")

	// ErrNoInput indicates the CLI received no items to process
	ErrNoInput = errors.New("no input items")
)

// ItemError wraps an error with the source index of the item whose unit of
// work produced it
type ItemError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As compatibility
func (e *ItemError) Unwrap() error {
	return e.Err
}

// WrapItemError wraps an error with item context
func WrapItemError(index int, err error) error {
	if err == nil {
		return nil
	}
	return &ItemError{
		Index: index,
		Err:   err,
	}
}

// MultiError aggregates multiple errors
type MultiError struct {
	Errors []error
}

// Error implements the error interface
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:", len(m.Errors)))
	for i, err := range m.Errors {
		if i < 10 { // Limit to first 10 errors in the message
			sb.WriteString(fmt.Sprintf("\n  %d. %v", i+1, err))
		} else if i == 10 {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more errors", len(m.Errors)-10))
			break
		}
	}
	return sb.String()
}

// Unwrap returns the errors for errors.Is/As compatibility
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Add adds an error to the multi-error
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// ErrorOrNil returns nil if no errors were added, otherwise returns the MultiError
func (m *MultiError) ErrorOrNil() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

// NewMultiError creates a new MultiError from a slice of errors
// It filters out nil errors
func NewMultiError(errs []error) *MultiError {
	m := &MultiError{
		Errors: make([]error, 0, len(errs)),
	}
	for _, err := range errs {
		if err != nil {
			m.Errors = append(m.Errors, err)
		}
	}
	return m
}

// IsCancellation reports whether err represents cooperative cancellation
// rather than a genuine failure
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled)
}
