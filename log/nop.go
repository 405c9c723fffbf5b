package log

// NopLogger is a 'Logger' implementation which discards all messages without evaluating them.
type NopLogger struct{}

var _ Logger = NopLogger{}

// Log implements the 'Logger' interface, the message producer is never invoked.
func (n NopLogger) Log(Level, MessageFunc) {}

// LogError implements the 'Logger' interface, the message producer is never invoked.
func (n NopLogger) LogError(Level, MessageFunc, error) {}

// NopProvider is a 'Provider' implementation which hands out loggers discarding everything; it's the canonical
// fallback for callers which fail to construct a provider for any real backend.
type NopProvider struct{}

var _ Provider = NopProvider{}

// GetLogger implements the 'Provider' interface.
func (n NopProvider) GetLogger(string) Logger {
	return NopLogger{}
}
