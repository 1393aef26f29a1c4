// Package apperr defines the failure kinds shared by use cases and the HTTP
// boundary. Domain packages wrap one of the kinds; presenters match on it with
// errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrStore           = errors.New("store failure")
)

// Error is a domain error tagged with one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// New builds a tagged error. Use it for package-level sentinels.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with formatting, for errors that carry an identifier.
func Newf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a driver error so callers see ErrStore but keep the cause.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

// Validation returns an ErrValidation error with the given message.
func Validation(message string) error {
	return New(ErrValidation, message)
}
