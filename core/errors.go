package core

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAuthFailed reports that the backend rejected the bearer token.
	ErrAuthFailed = errors.New("authentication rejected")

	// ErrNotFound reports that the requested record has no backend entry.
	ErrNotFound = errors.New("not found")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

// TransportError is any failed exchange with the backend: network errors,
// timeouts and non-2xx statuses that are not auth or not-found conditions.
// Status is 0 when no response was received at all.
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func NewTransportError(status int, msg string, err error) error {
	return &TransportError{Status: status, Message: msg, Err: err}
}

func (e TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}

func (e TransportError) Unwrap() error { return e.Err }

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

func IsTransportError(err error) bool {
	_, ok := errors.Cause(err).(*TransportError)
	return ok
}

func IsAuthError(err error) bool {
	return errors.Cause(err) == ErrAuthFailed
}

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}
