package logotel

import (
	"testing"

	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"

	"github.com/couchbase/cblog/log"
)

func TestSeverity(t *testing.T) {
	type test struct {
		name     string
		level    log.Level
		expected otellog.Severity
	}

	tests := []*test{
		{
			name:     "Debug",
			level:    log.LevelDebug,
			expected: otellog.SeverityDebug,
		},
		{
			name:     "Info",
			level:    log.LevelInfo,
			expected: otellog.SeverityInfo,
		},
		{
			name:     "Warning",
			level:    log.LevelWarning,
			expected: otellog.SeverityWarn,
		},
		{
			name:     "Error",
			level:    log.LevelError,
			expected: otellog.SeverityError,
		},
		{
			name:     "Fatal",
			level:    log.LevelFatal,
			expected: otellog.SeverityFatal,
		},
		{
			name:     "OutsideKnownSet",
			level:    log.Level(42),
			expected: otellog.SeverityDebug,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, severity(test.level))
		})
	}
}

func TestRecord(t *testing.T) {
	record := record(otellog.SeverityWarn, "running low on disk space")

	require.False(t, record.Timestamp().IsZero())
	require.Equal(t, otellog.SeverityWarn, record.Severity())
	require.Equal(t, "running low on disk space", record.Body().AsString())
}
