package logslog

import (
	"context"
	"log/slog"

	"github.com/couchbase/cblog/log"
)

// newAccessorSet resolves the accessor table binding the facade against the slog API.
func newAccessorSet() (*log.AccessorSet[*slog.Logger], error) {
	accessors := make(map[log.Level]log.Accessors[*slog.Logger])

	for level := log.LevelDebug; level <= log.LevelFatal; level++ {
		accessors[level] = newAccessors(slogLevel(level))
	}

	return log.NewAccessorSet(backendName, accessors)
}

// newAccessors returns the accessors dispatching at the given slog level.
func newAccessors(level slog.Level) log.Accessors[*slog.Logger] {
	return log.Accessors[*slog.Logger]{
		Enabled: func(handle *slog.Logger) bool {
			return handle.Enabled(context.Background(), level)
		},
		Write: func(handle *slog.Logger, message string) {
			handle.Log(context.Background(), level, message)
		},
		WriteError: func(handle *slog.Logger, message string, err error) {
			handle.Log(context.Background(), level, message, slog.Any("error", err))
		},
	}
}

// slogLevel converts a facade level to the equivalent slog level.
//
// NOTE: slog has no fatal level, fatal statements are gated and emitted at the error level.
func slogLevel(level log.Level) slog.Level {
	switch level {
	case log.LevelInfo:
		return slog.LevelInfo
	case log.LevelWarning:
		return slog.LevelWarn
	case log.LevelError, log.LevelFatal:
		return slog.LevelError
	}

	return slog.LevelDebug
}
