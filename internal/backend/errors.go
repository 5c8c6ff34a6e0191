package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound maps 404 responses (e.g. no referral code issued yet).
	ErrNotFound = errors.New("backend: not found")
	// ErrUnauthorized maps 401/403 responses; page handlers redirect to login.
	ErrUnauthorized = errors.New("backend: unauthorized")
)

// APIError carries the human-readable message embedded in a backend error
// body. The backend sends either {"message": ...} or {"details": {"message": ...}}.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}
