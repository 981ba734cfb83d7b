package ees

import (
	"fmt"
	"net/http"
)

// UpstreamError is returned for any transport failure or non-success status
// from the statistics API. Callers may retry; the client never does.
type UpstreamError struct {
	Method     string
	URI        string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.URI, e.Err)
	}
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URI, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Code returns the HTTP status used when this error reaches a handler
func (e *UpstreamError) Code() int {
	if e.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
