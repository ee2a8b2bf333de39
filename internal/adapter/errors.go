package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps failures where no HTTP response was received.
	ErrTransport = errors.New("directory unreachable")

	// ErrNotConfigured is returned when a request is attempted before
	// SetCredentials.
	ErrNotConfigured = errors.New("directory credentials are not set")
)

// StatusError is returned for every non-2xx response. It unwraps to one of
// the sentinel errors above so callers can use [errors.Is].
type StatusError struct {
	// Code is the HTTP status code.
	Code int
	// Status is the status line text, e.g. "403 Forbidden".
	Status string
	// Body is the response body, or the SCIM error detail when present.
	Body string

	kind error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: http %d", e.kind, e.Code)
	}
	return fmt.Sprintf("%v: http %d: %s", e.kind, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}
