package loglogr

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/cblog/log"
	"github.com/couchbase/cblog/logerr"
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

	_, err := NewProvider(ProviderOptions{Base: funcr.New(func(string, string) {}, funcr.Options{})})
	require.True(t, logerr.IsBackendUnavailableError(err))
}

func TestNewProviderNoSink(t *testing.T) {
	_, err := NewProvider(ProviderOptions{})
	require.True(t, logerr.IsBackendUnavailableError(err))
}

// newFuncrProvider returns a provider dispatching to a funcr logger gated at the given verbosity, and the lines the
// logger has rendered.
func newFuncrProvider(t *testing.T, verbosity int) (*Provider, *[]string) {
	var lines []string

	base := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: verbosity})

	provider, err := NewProvider(ProviderOptions{Base: base})
	require.NoError(t, err)

	return provider, &lines
}

func TestGetLogger(t *testing.T) {
	provider, lines := newFuncrProvider(t, 0)

	provider.GetLogger("backup").Log(log.LevelInfo, func() string { return "transfer complete" })

	require.Len(t, *lines, 1)
	require.Contains(t, (*lines)[0], "backup")
	require.Contains(t, (*lines)[0], `"msg"="transfer complete"`)
}

func TestGetLoggerDebugSuppressedAtDefaultVerbosity(t *testing.T) {
	provider, lines := newFuncrProvider(t, 0)

	provider.GetLogger("backup").Log(log.LevelDebug, func() string {
		t.Fatal("message produced for a suppressed level")
		return ""
	})

	require.Empty(t, *lines)
}

func TestGetLoggerDebugEnabledAtRaisedVerbosity(t *testing.T) {
	provider, lines := newFuncrProvider(t, 1)

	provider.GetLogger("backup").Log(log.LevelDebug, func() string { return "opened vbucket" })

	require.Len(t, *lines, 1)
	require.Contains(t, (*lines)[0], `"msg"="opened vbucket"`)
}

func TestGetLoggerWarningDispatchedAtDefaultVerbosity(t *testing.T) {
	provider, lines := newFuncrProvider(t, 0)

	provider.GetLogger("backup").Log(log.LevelWarning, func() string { return "retrying transfer" })

	require.Len(t, *lines, 1)
	require.Contains(t, (*lines)[0], `"msg"="retrying transfer"`)
}

func TestGetLoggerLogError(t *testing.T) {
	provider, lines := newFuncrProvider(t, 0)

	provider.GetLogger("backup").LogError(log.LevelError, func() string { return "transfer failed" }, assert.AnError)

	require.Len(t, *lines, 1)
	require.Contains(t, (*lines)[0], `"msg"="transfer failed"`)
	require.Contains(t, (*lines)[0], assert.AnError.Error())
}

func TestGetLoggerErrorChannelIgnoresVerbosity(t *testing.T) {
	provider, lines := newFuncrProvider(t, 0)

	provider.GetLogger("backup").Log(log.LevelError, func() string { return "transfer failed" })
	provider.GetLogger("backup").Log(log.LevelFatal, func() string { return "unrecoverable" })

	require.Len(t, *lines, 2)
}

func TestGetLoggerNestedName(t *testing.T) {
	var lines []string

	base := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{})

	provider, err := NewProvider(ProviderOptions{Base: base.WithName("cbbackupmgr")})
	require.NoError(t, err)

	provider.GetLogger("transfer").Log(log.LevelInfo, func() string { return "started" })

	require.Len(t, lines, 1)
	require.True(t, strings.HasPrefix(lines[0], "cbbackupmgr/transfer "))
}

func TestGetLoggerUnknownLevelDispatchedAsDebug(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		provider, lines := newFuncrProvider(t, 1)

		provider.GetLogger("backup").Log(log.Level(42), func() string { return "sent via the debug accessors" })

		require.Len(t, *lines, 1)
	})

	t.Run("Suppressed", func(t *testing.T) {
		provider, lines := newFuncrProvider(t, 0)

		provider.GetLogger("backup").Log(log.Level(42), func() string {
			t.Fatal("message produced for a suppressed level")
			return ""
		})

		require.Empty(t, *lines)
	})
}

func TestNewProviderDiscardLoggerRejected(t *testing.T) {
	// 'logr.Discard' hands back the zero logger, which carries no sink and is therefore indistinguishable from no
	// backend at all.
	_, err := NewProvider(ProviderOptions{Base: logr.Discard()})
	require.True(t, logerr.IsBackendUnavailableError(err))
}
