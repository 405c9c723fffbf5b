// Package log exposes a pluggable leveled logging facade; messages are dispatched to exactly one backend via a
// 'Provider' bound at construction time, with message evaluation deferred until the target level is known to be
// enabled.
package log

import "fmt"

// MessageFunc lazily produces a log message; implementations of 'Logger' only invoke it once the target level is known
// to be enabled, meaning expensive formatting is never paid for suppressed statements.
type MessageFunc func() string

// Logger interface which allows applications to log via a uniform leveled contract regardless of the backend in use.
type Logger interface {
	// Log evaluates the given message producer and logs the result at the given level. The producer is invoked at most
	// once, and not at all when the level is disabled.
	Log(level Level, message MessageFunc)

	// LogError behaves as 'Log' whilst also handing the given error to the backend unchanged.
	LogError(level Level, message MessageFunc, err error)
}

// Provider interface which produces named loggers bound to a single backend.
//
// NOTE: Providers resolve their backend bindings once during construction, 'GetLogger' only invokes the backend's
// native named logger factory.
type Provider interface {
	GetLogger(name string) Logger
}

// logger is the process wide default logger used by the functions below.
var logger Logger

// SetLogger sets the process wide default logger.
func SetLogger(l Logger) {
	logger = l
}

// Logf formats the given arguments and logs them via the default logger, most use cases should be through the
// functions below.
//
// NOTE: If no logger has been set using 'SetLogger' all logging information is omitted. Formatting is deferred, it's
// not performed for levels the default logger has disabled.
func Logf(level Level, format string, args ...any) {
	if logger == nil {
		return
	}

	logger.Log(level, func() string { return fmt.Sprintf(format, args...) })
}

// ErrorLogf behaves as 'Logf' whilst also handing the given error to the default logger.
func ErrorLogf(level Level, err error, format string, args ...any) {
	if logger == nil {
		return
	}

	logger.LogError(level, func() string { return fmt.Sprintf(format, args...) }, err)
}

// Debugf logs the provided information at the debug level.
func Debugf(format string, args ...any) {
	Logf(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func Infof(format string, args ...any) {
	Logf(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warn level.
func Warnf(format string, args ...any) {
	Logf(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func Errorf(format string, args ...any) {
	Logf(LevelError, format, args...)
}

// Fatalf logs the provided information at the fatal level.
//
// NOTE: Unlike the standard library, logging at the fatal level does not terminate the process; fatal is a severity,
// termination decisions belong to the caller.
func Fatalf(format string, args ...any) {
	Logf(LevelFatal, format, args...)
}
