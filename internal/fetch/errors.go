package fetch

import "errors"

// Fetch errors. Callers use errors.Is to tell them apart; the wrapped
// message carries the URL and the underlying cause.
var (
	// ErrTransport is returned when the request could not be completed
	// (DNS, connect, TLS, timeout, cancelled context).
	ErrTransport = errors.New("transport failure")

	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrParse is returned when the body cannot be decoded or parsed as HTML.
	ErrParse = errors.New("cannot parse response body")
)
