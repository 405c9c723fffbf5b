package logzap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/couchbase/cblog/log"
)

// newAccessorSet resolves the accessor table binding the facade against the zap API.
func newAccessorSet() (*log.AccessorSet[*zap.Logger], error) {
	accessors := make(map[log.Level]log.Accessors[*zap.Logger])

	for level := log.LevelDebug; level <= log.LevelFatal; level++ {
		accessors[level] = newAccessors(zapLevel(level))
	}

	return log.NewAccessorSet(backendName, accessors)
}

// newAccessors returns the accessors dispatching at the given zap level.
func newAccessors(level zapcore.Level) log.Accessors[*zap.Logger] {
	return log.Accessors[*zap.Logger]{
		Enabled: func(handle *zap.Logger) bool {
			return handle.Core().Enabled(level)
		},
		Write: func(handle *zap.Logger, message string) {
			write(handle, level, message)
		},
		WriteError: func(handle *zap.Logger, message string, err error) {
			write(handle, level, message, zap.Error(err))
		},
	}
}

// write dispatches a statement through the handle's core directly; the 'zap.Logger' level methods attach terminal
// behavior to fatal entries which must not leak through a facade treating fatal as a plain severity.
func write(handle *zap.Logger, level zapcore.Level, message string, fields ...zapcore.Field) {
	entry := zapcore.Entry{
		Level:      level,
		Time:       time.Now(),
		LoggerName: handle.Name(),
		Message:    message,
	}

	if checked := handle.Core().Check(entry, nil); checked != nil {
		checked.Write(fields...)
	}
}

// zapLevel converts a facade level to the equivalent zap level.
func zapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarning:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	case log.LevelFatal:
		return zapcore.FatalLevel
	}

	return zapcore.DebugLevel
}
