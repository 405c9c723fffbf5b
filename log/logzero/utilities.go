package logzero

import (
	"github.com/rs/zerolog"

	"github.com/couchbase/cblog/log"
)

// newAccessorSet resolves the accessor table binding the facade against the zerolog API.
func newAccessorSet() (*log.AccessorSet[zerolog.Logger], error) {
	accessors := make(map[log.Level]log.Accessors[zerolog.Logger])

	for level := log.LevelDebug; level <= log.LevelFatal; level++ {
		accessors[level] = newAccessors(zerologLevel(level))
	}

	return log.NewAccessorSet(backendName, accessors)
}

// newAccessors returns the accessors dispatching at the given zerolog level.
//
// NOTE: Writes go through 'WithLevel' which, unlike the 'Fatal' method, does not terminate the process once the
// statement has been written; fatal remains a plain severity.
func newAccessors(level zerolog.Level) log.Accessors[zerolog.Logger] {
	return log.Accessors[zerolog.Logger]{
		Enabled: func(handle zerolog.Logger) bool {
			return enabled(handle, level)
		},
		Write: func(handle zerolog.Logger, message string) {
			handle.WithLevel(level).Msg(message)
		},
		WriteError: func(handle zerolog.Logger, message string, err error) {
			handle.WithLevel(level).Err(err).Msg(message)
		},
	}
}

// enabled mirrors the gating zerolog performs when creating events, honoring the logger level and the global level.
func enabled(handle zerolog.Logger, level zerolog.Level) bool {
	return handle.GetLevel() != zerolog.Disabled && level >= handle.GetLevel() && level >= zerolog.GlobalLevel()
}

// zerologLevel converts a facade level to the equivalent zerolog level.
func zerologLevel(level log.Level) zerolog.Level {
	switch level {
	case log.LevelInfo:
		return zerolog.InfoLevel
	case log.LevelWarning:
		return zerolog.WarnLevel
	case log.LevelError:
		return zerolog.ErrorLevel
	case log.LevelFatal:
		return zerolog.FatalLevel
	}

	return zerolog.DebugLevel
}
