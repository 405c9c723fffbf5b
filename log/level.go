package log

import (
	"fmt"
	"strings"
)

// Level is a type alias which is used to indicate the verbosity of a log statement.
type Level uint8

const (
	// LevelDebug includes fine-grained informational events that are the most useful to debug an application.
	LevelDebug Level = iota

	// LevelInfo includes informational messages that highlight the progress of events at a course-grained level.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the application to continue running.
	LevelError

	// LevelFatal includes severe error events which will presumably lead the application to abort.
	//
	// NOTE: Logging at the fatal level does not terminate the process, whether to abort remains the caller's decision.
	LevelFatal
)

// numLevels is the number of levels in the closed set above.
const numLevels = int(LevelFatal) + 1

// String implements the 'Stringer' interface; levels outside the known set are rendered as "unknown" rather than
// triggering a panic since they remain valid input to the logging functions.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}

	return "unknown"
}

// ParseLevel returns the level matching the given string ignoring case, accepting both "warn" and "warning" for the
// warning level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}

	return LevelDebug, fmt.Errorf("unknown log level '%s'", s)
}
