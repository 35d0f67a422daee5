package upstream

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when a required query is blank.
var ErrEmptyQuery = errors.New("query must not be empty")

// TransportError means the request never produced a response.
type TransportError struct {
	Service string
	Err     error
}

// Error returns the error message.
func (e TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

// Unwrap returns the underlying transport error.
func (e TransportError) Unwrap() error {
	return e.Err
}

// RemoteServiceError means the upstream answered with a non-2xx status.
type RemoteServiceError struct {
	Service    string
	StatusCode int
	Body       string
}

// Error returns the error message.
func (e RemoteServiceError) Error() string {
	return fmt.Sprintf("%s API Error: %d", e.Service, e.StatusCode)
}

// NotFoundError means the upstream answered but had nothing for the lookup.
type NotFoundError struct {
	Message string
}

// Error returns the error message.
func (e NotFoundError) Error() string {
	return e.Message
}
