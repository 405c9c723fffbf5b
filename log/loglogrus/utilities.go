package loglogrus

import (
	"github.com/sirupsen/logrus"

	"github.com/couchbase/cblog/log"
)

// newAccessorSet resolves the accessor table binding the facade against the logrus API.
func newAccessorSet() (*log.AccessorSet[*logrus.Entry], error) {
	accessors := make(map[log.Level]log.Accessors[*logrus.Entry])

	for level := log.LevelDebug; level <= log.LevelFatal; level++ {
		accessors[level] = newAccessors(logrusLevel(level))
	}

	return log.NewAccessorSet(backendName, accessors)
}

// newAccessors returns the accessors dispatching at the given logrus level.
//
// NOTE: Writes go through 'Entry.Log' which, unlike the 'Fatal' friends on both 'Entry' and 'Logger', never invokes
// the logger's exit handler; fatal remains a plain severity.
func newAccessors(level logrus.Level) log.Accessors[*logrus.Entry] {
	return log.Accessors[*logrus.Entry]{
		Enabled: func(handle *logrus.Entry) bool {
			return handle.Logger.IsLevelEnabled(level)
		},
		Write: func(handle *logrus.Entry, message string) {
			handle.Log(level, message)
		},
		WriteError: func(handle *logrus.Entry, message string, err error) {
			handle.WithError(err).Log(level, message)
		},
	}
}

// logrusLevel converts a facade level to the equivalent logrus level.
//
// NOTE: logrus orders its levels in the opposite direction, the conversion relies on the named constants rather than
// the numeric values.
func logrusLevel(level log.Level) logrus.Level {
	switch level {
	case log.LevelInfo:
		return logrus.InfoLevel
	case log.LevelWarning:
		return logrus.WarnLevel
	case log.LevelError:
		return logrus.ErrorLevel
	case log.LevelFatal:
		return logrus.FatalLevel
	}

	return logrus.DebugLevel
}
