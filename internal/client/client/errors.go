package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)

// StatusError is returned for every non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
	kind       error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.kind, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

func statusKind(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return ErrServer
	}
}

// NewStatusError classifies code and returns the matching error.
func NewStatusError(code int, body string) *StatusError {
	return &StatusError{StatusCode: code, Body: body, kind: statusKind(code)}
}

// mapTransportError classifies a failure that happened before any response
// was read (dial, TLS, timeout) as ErrUnavailable. Caller cancellation is
// passed through untouched.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
