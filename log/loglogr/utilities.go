package loglogr

import (
	"github.com/go-logr/logr"

	"github.com/couchbase/cblog/log"
)

// logr verbosities the facade's verbosity gated levels bind to.
const (
	verbosityInfo  = 0
	verbosityDebug = 1
)

// newAccessorSet resolves the accessor table binding the facade against the logr API.
//
// NOTE: logr exposes two channels, verbosity gated info and always-on error; debug/info/warning statements dispatch
// via verbosities one and zero, error/fatal statements via the error channel.
func newAccessorSet() (*log.AccessorSet[logr.Logger], error) {
	accessors := make(map[log.Level]log.Accessors[logr.Logger])

	for level := log.LevelDebug; level <= log.LevelFatal; level++ {
		accessors[level] = newAccessors(level)
	}

	return log.NewAccessorSet(backendName, accessors)
}

// newAccessors returns the accessors dispatching at the given facade level.
func newAccessors(level log.Level) log.Accessors[logr.Logger] {
	if level == log.LevelError || level == log.LevelFatal {
		return errorAccessors()
	}

	return infoAccessors(verbosity(level))
}

// infoAccessors returns accessors dispatching via the verbosity gated info channel.
func infoAccessors(verbosity int) log.Accessors[logr.Logger] {
	return log.Accessors[logr.Logger]{
		Enabled: func(handle logr.Logger) bool {
			return handle.V(verbosity).Enabled()
		},
		Write: func(handle logr.Logger, message string) {
			handle.V(verbosity).Info(message)
		},
		WriteError: func(handle logr.Logger, message string, err error) {
			handle.V(verbosity).Info(message, "error", err)
		},
	}
}

// errorAccessors returns accessors dispatching via the error channel, which is enabled whenever a sink exists.
func errorAccessors() log.Accessors[logr.Logger] {
	return log.Accessors[logr.Logger]{
		Enabled: func(handle logr.Logger) bool {
			return handle.GetSink() != nil
		},
		Write: func(handle logr.Logger, message string) {
			handle.Error(nil, message)
		},
		WriteError: func(handle logr.Logger, message string, err error) {
			handle.Error(err, message)
		},
	}
}

// verbosity converts a facade level to a logr verbosity.
//
// NOTE: logr has no warning level, warnings dispatch at the default verbosity alongside info.
func verbosity(level log.Level) int {
	if level == log.LevelDebug {
		return verbosityDebug
	}

	return verbosityInfo
}
