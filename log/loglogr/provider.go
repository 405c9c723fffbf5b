// Package loglogr provides an implementation of 'log.Provider' backed by 'github.com/go-logr/logr'.
package loglogr

import (
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/couchbase/cblog/log"
	"github.com/couchbase/cblog/logerr"
)

// backendName identifies the backend in errors returned by this package.
const backendName = "logr"

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

// Provider implements the 'log.Provider' interface creating loggers which dispatch to a logr sink.
type Provider struct {
	base      logr.Logger
	accessors *log.AccessorSet[logr.Logger]
}

var _ log.Provider = (*Provider)(nil)

// ProviderOptions encapsulates the options for creating a new logr backed provider.
type ProviderOptions struct {
	// Base is the logger named loggers are derived from.
	//
	// NOTE: Required, logr exposes no process global logger; the zero value carries no sink and fails construction.
	Base logr.Logger
}

// NewProvider returns a new logr backed provider with its accessor table resolved; construction fails fast when the
// backend is unavailable or the given logger has no sink, the returned provider is never partially usable.
func NewProvider(options ProviderOptions) (*Provider, error) {
	if !Available() || options.Base.GetSink() == nil {
		return nil, &logerr.BackendUnavailableError{Backend: backendName}
	}

	accessors, err := newAccessorSet()
	if err != nil {
		return nil, err // Purposefully not wrapped
	}

	provider := Provider{
		base:      options.Base,
		accessors: accessors,
	}

	return &provider, nil
}

// GetLogger implements the 'log.Provider' interface, naming uses logr's hierarchical 'WithName' factory.
func (p *Provider) GetLogger(name string) log.Logger {
	return log.NewAdapter(p.base.WithName(name), p.accessors)
}
