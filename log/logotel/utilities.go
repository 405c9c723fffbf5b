package logotel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"

	"github.com/couchbase/cblog/log"
)

// newAccessorSet resolves the accessor table binding the facade against the OpenTelemetry logs bridge API.
func newAccessorSet() (*log.AccessorSet[otellog.Logger], error) {
	accessors := make(map[log.Level]log.Accessors[otellog.Logger])

	for level := log.LevelDebug; level <= log.LevelFatal; level++ {
		accessors[level] = newAccessors(severity(level))
	}

	return log.NewAccessorSet(backendName, accessors)
}

// newAccessors returns the accessors emitting records at the given severity.
func newAccessors(severity otellog.Severity) log.Accessors[otellog.Logger] {
	return log.Accessors[otellog.Logger]{
		Enabled: func(handle otellog.Logger) bool {
			return handle.Enabled(context.Background(), otellog.EnabledParameters{Severity: severity})
		},
		Write: func(handle otellog.Logger, message string) {
			handle.Emit(context.Background(), record(severity, message))
		},
		WriteError: func(handle otellog.Logger, message string, err error) {
			rec := record(severity, message)

			if err != nil {
				rec.AddAttributes(otellog.String("error", err.Error()))
			}

			handle.Emit(context.Background(), rec)
		},
	}
}

// record returns a log record carrying the given severity and message body.
func record(severity otellog.Severity, message string) otellog.Record {
	var record otellog.Record

	record.SetTimestamp(time.Now())
	record.SetSeverity(severity)
	record.SetBody(otellog.StringValue(message))

	return record
}

// severity converts a facade level to the equivalent OpenTelemetry severity.
func severity(level log.Level) otellog.Severity {
	switch level {
	case log.LevelInfo:
		return otellog.SeverityInfo
	case log.LevelWarning:
		return otellog.SeverityWarn
	case log.LevelError:
		return otellog.SeverityError
	case log.LevelFatal:
		return otellog.SeverityFatal
	}

	return otellog.SeverityDebug
}
