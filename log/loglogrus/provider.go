// Package loglogrus provides an implementation of 'log.Provider' backed by 'github.com/sirupsen/logrus'.
package loglogrus

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/couchbase/cblog/log"
	"github.com/couchbase/cblog/logerr"
)

// backendName identifies the backend in errors returned by this package.
const backendName = "logrus"

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

// Provider implements the 'log.Provider' interface creating loggers which dispatch to logrus.
type Provider struct {
	base      *logrus.Logger
	accessors *log.AccessorSet[*logrus.Entry]
}

var _ log.Provider = (*Provider)(nil)

// ProviderOptions encapsulates the options for creating a new logrus backed provider.
type ProviderOptions struct {
	// Base is the logger named loggers are derived from.
	//
	// NOTE: Defaults to the process global 'logrus.StandardLogger()'.
	Base *logrus.Logger
}

// defaults fills any missing attributes to a sane default.
func (p *ProviderOptions) defaults() {
	if p.Base == nil {
		p.Base = logrus.StandardLogger()
	}
}

// NewProvider returns a new logrus backed provider with its accessor table resolved; construction fails fast when the
// backend is unavailable, the returned provider is never partially usable.
func NewProvider(options ProviderOptions) (*Provider, error) {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	if !Available() || options.Base == nil {
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

// GetLogger implements the 'log.Provider' interface, the name is attached to each statement as the 'logger' field.
func (p *Provider) GetLogger(name string) log.Logger {
	return log.NewAdapter(p.base.WithField("logger", name), p.accessors)
}
