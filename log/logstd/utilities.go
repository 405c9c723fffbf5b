package logstd

import (
	"github.com/couchbase/cblog/log"
)

// newAccessorSet resolves the accessor table binding the facade against the standard library logger.
//
// NOTE: The standard library logger has no levels of its own, statements gate against the minimum severity carried by
// the handle and are written with a severity tag.
func newAccessorSet() (*log.AccessorSet[handle], error) {
	accessors := make(map[log.Level]log.Accessors[handle])

	for level := log.LevelDebug; level <= log.LevelFatal; level++ {
		accessors[level] = newAccessors(level)
	}

	return log.NewAccessorSet(backendName, accessors)
}

// newAccessors returns the accessors dispatching at the given facade level.
func newAccessors(level log.Level) log.Accessors[handle] {
	tag := levelTag(level)

	return log.Accessors[handle]{
		Enabled: func(handle handle) bool {
			return level >= handle.level
		},
		Write: func(handle handle, message string) {
			handle.logger.Print(tag + ": " + message)
		},
		WriteError: func(handle handle, message string, err error) {
			if err == nil {
				handle.logger.Print(tag + ": " + message)
				return
			}

			handle.logger.Print(tag + ": " + message + ": " + err.Error())
		},
	}
}

// levelTag returns the four character tag statements at the given level are written with.
func levelTag(level log.Level) string {
	switch level {
	case log.LevelInfo:
		return "INFO"
	case log.LevelWarning:
		return "WARN"
	case log.LevelError:
		return "ERRO"
	case log.LevelFatal:
		return "FATA"
	}

	return "DEBU"
}
