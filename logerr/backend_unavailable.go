// Package logerr exposes the error types returned when binding the logging facade to a backend.
package logerr

import (
	"errors"
	"fmt"
)

// BackendUnavailableError indicates that a backend could not be bound, either because its entry point is not reachable
// in the current process, or because it has been disabled via the backend's override flag.
type BackendUnavailableError struct {
	Backend string
}

// Error implements the 'error' interface.
func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("logging backend '%s' is not available", e.Backend)
}

// IsBackendUnavailableError returns a boolean indicating whether the given error is a 'BackendUnavailableError'.
func IsBackendUnavailableError(err error) bool {
	var backendUnavailableError *BackendUnavailableError
	return errors.As(err, &backendUnavailableError)
}
