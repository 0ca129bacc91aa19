package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError reports a request the backend did not answer usefully:
// the network failed, the status was not 2xx, or the body could not be
// parsed. It matches ErrUnavailable, and ErrUnauthorized for 401 and 403.
type TransportError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Path, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
}

func (e *TransportError) Unwrap() []error {
	errs := []error{ErrUnavailable}
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		errs = append(errs, ErrUnauthorized)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// APIError is a business or validation rejection of a write by a reachable
// backend. Message is the server's text, unchanged.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string { return e.Message }

// IsUnavailable reports whether err is a transport failure.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
