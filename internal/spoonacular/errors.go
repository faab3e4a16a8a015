package spoonacular

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped when a successful response body cannot be decoded
var ErrMalformedResponse = errors.New("malformed response")

// APIError is returned for any non-200 response. Body is kept verbatim for display.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps a network level failure (DNS, connect, timeout)
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is, or wraps, an *APIError
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsTransportError reports whether err is, or wraps, a *TransportError
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
