package memoryservice

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested user or session does not exist on
// the remote service. It is distinct from transport failures so callers
// can tell "missing" apart from "unreachable".
var ErrNotFound = errors.New("memory service: not found")

// APIError is a non-2xx response other than not-found.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("memory service: status %d, body: %s", e.StatusCode, e.Body)
}
