package logerr

import (
	"errors"
	"fmt"
	"strings"
)

// AccessorResolutionError indicates that one or more of the per-level logging operations could not be resolved against
// a backend during provider construction; backends are bound all-or-nothing, a partially capable backend is treated as
// unusable.
type AccessorResolutionError struct {
	Backend string
	Missing []string
}

// Error implements the 'error' interface.
func (e *AccessorResolutionError) Error() string {
	return fmt.Sprintf("logging backend '%s' is missing accessors for %s", e.Backend, strings.Join(e.Missing, ", "))
}

// IsAccessorResolutionError returns a boolean indicating whether the given error is an 'AccessorResolutionError'.
func IsAccessorResolutionError(err error) bool {
	var accessorResolutionError *AccessorResolutionError
	return errors.As(err, &accessorResolutionError)
}

// IsProviderError returns a boolean indicating whether the given error means a provider could not be constructed; both
// resolution failures and unavailable backends are handled the same way by callers, skip the backend and fall back to
// another.
func IsProviderError(err error) bool {
	return IsBackendUnavailableError(err) || IsAccessorResolutionError(err)
}
