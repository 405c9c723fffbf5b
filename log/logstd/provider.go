// Package logstd provides an implementation of 'log.Provider' backed by the standard library's plain text logger.
package logstd

import (
	"io"
	stdlog "log"
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"

	"github.com/couchbase/cblog/envvar"
	"github.com/couchbase/cblog/log"
	"github.com/couchbase/cblog/logerr"
)

// backendName identifies the backend in errors returned by this package.
const backendName = "std"

// EnvLogLevel is the environment variable consulted for the minimum emitted severity when one isn't provided.
const EnvLogLevel = "CBLOG_LEVEL"

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

// handle pairs a standard library logger with the minimum severity the provider emits.
type handle struct {
	logger *stdlog.Logger
	level  log.Level
}

// Provider implements the 'log.Provider' interface creating loggers which dispatch to the standard library.
type Provider struct {
	output    io.Writer
	flags     int
	level     log.Level
	accessors *log.AccessorSet[handle]
}

var _ log.Provider = (*Provider)(nil)

// ProviderOptions encapsulates the options for creating a new standard library backed provider.
type ProviderOptions struct {
	// Output is the writer statements are written to.
	//
	// NOTE: Defaults to 'os.Stderr'.
	Output io.Writer

	// Flags are the standard library logger flags applied to each created logger.
	//
	// NOTE: Defaults to 'log.LstdFlags' unless the output is an interactive terminal, in which case the timestamp
	// decoration is omitted.
	Flags int

	// Level is the minimum severity emitted.
	//
	// NOTE: Defaults to the level parsed from the 'CBLOG_LEVEL' environment variable, falling back to 'LevelInfo'.
	Level *log.Level
}

// defaults fills any missing attributes to a sane default.
func (p *ProviderOptions) defaults() {
	if p.Output == nil {
		p.Output = os.Stderr
	}

	if p.Flags == 0 && !terminal(p.Output) {
		p.Flags = stdlog.LstdFlags
	}

	if p.Level == nil {
		level, ok := envvar.GetLevel(EnvLogLevel)
		if !ok {
			level = log.LevelInfo
		}

		p.Level = &level
	}
}

// NewProvider returns a new standard library backed provider with its accessor table resolved; construction fails
// fast when the backend is unavailable, the returned provider is never partially usable.
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
		output:    options.Output,
		flags:     options.Flags,
		level:     *options.Level,
		accessors: accessors,
	}

	return &provider, nil
}

// GetLogger implements the 'log.Provider' interface, the name becomes the prefix of the underlying logger.
func (p *Provider) GetLogger(name string) log.Logger {
	var prefix string
	if name != "" {
		prefix = name + " "
	}

	return log.NewAdapter(handle{logger: stdlog.New(p.output, prefix, p.flags), level: p.level}, p.accessors)
}

// terminal returns a boolean indicating whether the given writer is an interactive terminal.
func terminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	return ok && (isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd()))
}
