package lunarcrushapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// TransportError is returned when the request could not be built or the HTTP
// round trip failed (connection refused, DNS, TLS, context cancellation...).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lunarcrush: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when the response body is not valid JSON.
type DecodeError struct {
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("lunarcrush: can not decode response of %s (status %d): %v", e.URL, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is only returned by clients created with WithStrictStatus.
// By default a non-2xx response is decoded and returned like any other.
type APIError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lunarcrush: %s returned status %d: %s", e.URL, e.StatusCode, truncate(e.Body, 256))
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func IsAPIError(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}

	return string(b[:n]) + "..."
}
