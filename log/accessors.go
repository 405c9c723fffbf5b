package log

import (
	"golang.org/x/exp/slices"

	"github.com/couchbase/cblog/logerr"
)

// Accessors are the logging operations resolved against a backend for a single level; resolution happens once per
// provider rather than once per logger or once per call.
type Accessors[H any] struct {
	// Enabled returns a boolean indicating whether the level is currently enabled for the given backend handle.
	Enabled func(handle H) bool

	// Write emits the given message via the backend handle.
	Write func(handle H, message string)

	// WriteError emits the given message, and the error that triggered it, via the backend handle.
	WriteError func(handle H, message string, err error)
}

// AccessorSet is the complete resolved accessor table for a backend, five levels by three operations. The set is
// immutable once constructed and is shared read-only by every adapter created by the owning provider.
type AccessorSet[H any] struct {
	accessors [numLevels]Accessors[H]
}

// NewAccessorSet creates a validated accessor set from the given per-level accessors.
//
// NOTE: Resolution is all-or-nothing, a set missing any accessor fails with an 'AccessorResolutionError' naming every
// missing level/operation pair; partially capable backends are not supported.
func NewAccessorSet[H any](backend string, accessors map[Level]Accessors[H]) (*AccessorSet[H], error) {
	var (
		set     AccessorSet[H]
		missing []string
	)

	for level := LevelDebug; level <= LevelFatal; level++ {
		resolved := accessors[level]

		if resolved.Enabled == nil {
			missing = append(missing, level.String()+"/enabled")
		}

		if resolved.Write == nil {
			missing = append(missing, level.String()+"/write")
		}

		if resolved.WriteError == nil {
			missing = append(missing, level.String()+"/write_error")
		}

		set.accessors[level] = resolved
	}

	if len(missing) != 0 {
		slices.Sort(missing)

		return nil, &logerr.AccessorResolutionError{Backend: backend, Missing: missing}
	}

	return &set, nil
}

// forLevel returns the accessors bound for the given level; levels outside the known set dispatch via the debug
// accessors.
func (a *AccessorSet[H]) forLevel(level Level) Accessors[H] {
	if level > LevelFatal {
		level = LevelDebug
	}

	return a.accessors[level]
}
