package internal

import (
	"errors"
	"fmt"
)

// ErrBusy is returned by a single-flight controller when a send is
// already awaiting the generation endpoint.
var ErrBusy = errors.New("a send is already in flight")

// ValidationError reports a rejected user action (empty prompt,
// missing credential). It is recovered locally and never mutates state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

// TransportError represents a failed exchange with the generation
// endpoint: a network failure, a non-2xx status, or an unreadable body.
type TransportError struct {
	Op  string // "request", "read", "status"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError represents a corrupt persisted blob found at hydration.
type ParseError struct {
	Key string // storage key
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s]: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
