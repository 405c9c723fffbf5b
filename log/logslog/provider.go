// Package logslog provides an implementation of 'log.Provider' backed by the standard library's structured logger.
package logslog

import (
	"log/slog"
	"sync/atomic"

	"github.com/couchbase/cblog/log"
	"github.com/couchbase/cblog/logerr"
)

// backendName identifies the backend in errors returned by this package.
const backendName = "slog"

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
//
// NOTE: slog is compiled into every module built against this package meaning the entry point is always reachable,
// only the override flag may report the backend unavailable.
func Available() bool {
	return !disabled.Load()
}

// Provider implements the 'log.Provider' interface creating loggers which dispatch to 'log/slog'.
type Provider struct {
	handler   slog.Handler
	accessors *log.AccessorSet[*slog.Logger]
}

var _ log.Provider = (*Provider)(nil)

// ProviderOptions encapsulates the options for creating a new slog backed provider.
type ProviderOptions struct {
	// Handler is the handler statements are dispatched to.
	//
	// NOTE: Defaults to the handler of 'slog.Default()'.
	Handler slog.Handler
}

// defaults fills any missing attributes to a sane default.
func (p *ProviderOptions) defaults() {
	if p.Handler == nil {
		p.Handler = slog.Default().Handler()
	}
}

// NewProvider returns a new slog backed provider with its accessor table resolved; construction fails fast when the
// backend is unavailable, the returned provider is never partially usable.
func NewProvider(options ProviderOptions) (*Provider, error) {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	if !Available() {
		return nil, &logerr.BackendUnavailableError{Backend: backendName}
	}

	accessors, err := newAccessorSet()
	if err != nil {
		return nil, err // Purposefully not wrapped
	}

	provider := Provider{
		handler:   options.Handler,
		accessors: accessors,
	}

	return &provider, nil
}

// GetLogger implements the 'log.Provider' interface, the name is attached to each statement as the 'logger' attribute.
func (p *Provider) GetLogger(name string) log.Logger {
	return log.NewAdapter(slog.New(p.handler).With(slog.String("logger", name)), p.accessors)
}
