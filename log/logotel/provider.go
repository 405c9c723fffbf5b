// Package logotel provides an implementation of 'log.Provider' backed by the OpenTelemetry logs bridge API.
package logotel

import (
	"sync/atomic"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"

	"github.com/couchbase/cblog/log"
	"github.com/couchbase/cblog/logerr"
)

// backendName identifies the backend in errors returned by this package.
const backendName = "otel"

// disabled is the process wide override which forces the backend to report as unavailable.
var disabled atomic.Bool

// SetDisabled sets the process wide override flag; disabling the backend stops new providers from being constructed
// but does not affect existing ones.
func SetDisabled(d bool) {
	disabled.Store(d)
}

// Disabled returns a boolean indicating whether the backend has been disabled via 'SetDisabled'.
func Disabled() bool {
	return disabled.Load()
}

// Available returns a boolean indicating whether the backend may currently be bound.
func Available() bool {
	return !disabled.Load()
}

// Provider implements the 'log.Provider' interface creating loggers which emit OpenTelemetry log records.
type Provider struct {
	provider  otellog.LoggerProvider
	accessors *log.AccessorSet[otellog.Logger]
}

var _ log.Provider = (*Provider)(nil)

// ProviderOptions encapsulates the options for creating a new OpenTelemetry backed provider.
type ProviderOptions struct {
	// LoggerProvider is the provider named loggers are created from.
	//
	// NOTE: Defaults to the process global provider.
	LoggerProvider otellog.LoggerProvider
}

// defaults fills any missing attributes to a sane default.
func (p *ProviderOptions) defaults() {
	if p.LoggerProvider == nil {
		p.LoggerProvider = global.GetLoggerProvider()
	}
}

// NewProvider returns a new OpenTelemetry backed provider with its accessor table resolved; construction fails fast
// when the backend is unavailable, the returned provider is never partially usable.
func NewProvider(options ProviderOptions) (*Provider, error) {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	if !Available() || options.LoggerProvider == nil {
		return nil, &logerr.BackendUnavailableError{Backend: backendName}
	}

	accessors, err := newAccessorSet()
	if err != nil {
		return nil, err // Purposefully not wrapped
	}

	provider := Provider{
		provider:  options.LoggerProvider,
		accessors: accessors,
	}

	return &provider, nil
}

// GetLogger implements the 'log.Provider' interface, the name becomes the instrumentation scope of the underlying
// logger.
func (p *Provider) GetLogger(name string) log.Logger {
	return log.NewAdapter(p.provider.Logger(name), p.accessors)
}
