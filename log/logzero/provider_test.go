package logzero

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/cblog/log"
	"github.com/couchbase/cblog/logerr"
	"github.com/couchbase/cblog/testutil"
)

func TestAvailable(t *testing.T) {
	require.True(t, Available())

	SetDisabled(true)
	t.Cleanup(func() { SetDisabled(false) })

	require.True(t, Disabled())
	require.False(t, Available())
}

func TestNewProviderDisabled(t *testing.T) {
	SetDisabled(true)
	t.Cleanup(func() { SetDisabled(false) })

	_, err := NewProvider(ProviderOptions{})
	require.True(t, logerr.IsBackendUnavailableError(err))
}

func TestNewProviderDefaults(t *testing.T) {
	provider, err := NewProvider(ProviderOptions{})
	require.NoError(t, err)
	require.Equal(t, zerologlog.Logger, provider.base)
}

// newBufferedProvider returns a provider dispatching to a logger gated at the given level, and the buffer the logger
// writes to.
func newBufferedProvider(t *testing.T, level zerolog.Level) (*Provider, *bytes.Buffer) {
	var buffer bytes.Buffer

	base := zerolog.New(&buffer).Level(level)

	provider, err := NewProvider(ProviderOptions{Base: &base})
	require.NoError(t, err)

	return provider, &buffer
}

func TestGetLogger(t *testing.T) {
	provider, buffer := newBufferedProvider(t, zerolog.DebugLevel)

	provider.GetLogger("backup").Log(log.LevelInfo, func() string { return "transfer complete" })

	line := testutil.Line(t, buffer.Bytes())

	require.Equal(t, "info", testutil.FieldString(t, line, "level"))
	require.Equal(t, "transfer complete", testutil.FieldString(t, line, "message"))
	require.Equal(t, "backup", testutil.FieldString(t, line, "logger"))
	testutil.FieldMissing(t, line, "error")
}

func TestGetLoggerSuppressedLevelNotEvaluated(t *testing.T) {
	provider, buffer := newBufferedProvider(t, zerolog.InfoLevel)

	provider.GetLogger("backup").Log(log.LevelDebug, func() string {
		t.Fatal("message produced for a suppressed level")
		return ""
	})

	require.Empty(t, testutil.Lines(t, buffer.Bytes()))
}

func TestGetLoggerSuppressedByGlobalLevel(t *testing.T) {
	prior := zerolog.GlobalLevel()

	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prior) })

	provider, buffer := newBufferedProvider(t, zerolog.DebugLevel)

	provider.GetLogger("backup").Log(log.LevelInfo, func() string {
		t.Fatal("message produced for a suppressed level")
		return ""
	})

	require.Empty(t, testutil.Lines(t, buffer.Bytes()))
}

func TestGetLoggerLogError(t *testing.T) {
	provider, buffer := newBufferedProvider(t, zerolog.DebugLevel)

	provider.GetLogger("backup").LogError(log.LevelError, func() string { return "transfer failed" }, assert.AnError)

	line := testutil.Line(t, buffer.Bytes())

	require.Equal(t, "error", testutil.FieldString(t, line, "level"))
	require.Equal(t, "transfer failed", testutil.FieldString(t, line, "message"))
	require.Equal(t, assert.AnError.Error(), testutil.FieldString(t, line, "error"))
}

func TestGetLoggerFatalDoesNotTerminate(t *testing.T) {
	provider, buffer := newBufferedProvider(t, zerolog.InfoLevel)

	// Must only write the statement, zerolog's exit-on-fatal behavior must not run.
	provider.GetLogger("backup").Log(log.LevelFatal, func() string { return "unrecoverable" })

	line := testutil.Line(t, buffer.Bytes())

	require.Equal(t, "fatal", testutil.FieldString(t, line, "level"))
	require.Equal(t, "unrecoverable", testutil.FieldString(t, line, "message"))
}

func TestGetLoggerUnknownLevelDispatchedAsDebug(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		provider, buffer := newBufferedProvider(t, zerolog.DebugLevel)

		provider.GetLogger("backup").Log(log.Level(42), func() string { return "sent via the debug accessors" })

		line := testutil.Line(t, buffer.Bytes())

		require.Equal(t, "debug", testutil.FieldString(t, line, "level"))
	})

	t.Run("Suppressed", func(t *testing.T) {
		provider, buffer := newBufferedProvider(t, zerolog.InfoLevel)

		provider.GetLogger("backup").Log(log.Level(42), func() string {
			t.Fatal("message produced for a suppressed level")
			return ""
		})

		require.Empty(t, testutil.Lines(t, buffer.Bytes()))
	})
}
