package backend

import (
	"fmt"
)

// BackendError wraps any failure surfaced by a text-generation provider:
// network, authentication, quota. It is opaque to callers and propagated
// unchanged; nothing in this module retries or suppresses it.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
