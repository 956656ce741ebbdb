package api

import (
	"errors"
	"fmt"
)

var (
	// ErrBaseURLRequired is returned when a base URL is not provided.
	ErrBaseURLRequired = errors.New("base URL required")
)

// APIError is a non-2xx response from the search service.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error returns the server-provided detail when present, otherwise a
// generic message carrying the status code.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("search service returned status %d", e.StatusCode)
}
