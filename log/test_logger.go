package log

import (
	"sync"

	"golang.org/x/exp/slices"
)

// TestEntry is a single message recorded by a 'TestLogger'.
type TestEntry struct {
	Level   Level
	Message string
	Err     error
}

// TestLogger implementation of the 'Logger' interface which records messages in memory, and can be used to avoid
// having to manually mock a logger during unit testing.
type TestLogger struct {
	lock    sync.Mutex
	entries []TestEntry
}

var _ Logger = (*TestLogger)(nil)

// NewTestLogger returns a new test logger, which has recorded no messages.
func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

// Log implements the 'Logger' interface, the message producer is always evaluated.
func (t *TestLogger) Log(level Level, message MessageFunc) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.entries = append(t.entries, TestEntry{Level: level, Message: message()})
}

// LogError implements the 'Logger' interface, the message producer is always evaluated.
func (t *TestLogger) LogError(level Level, message MessageFunc, err error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.entries = append(t.entries, TestEntry{Level: level, Message: message(), Err: err})
}

// Entries returns a copy of the entries recorded so far, in the order they were logged.
func (t *TestLogger) Entries() []TestEntry {
	t.lock.Lock()
	defer t.lock.Unlock()

	return slices.Clone(t.entries)
}

// Reset discards all the recorded entries.
func (t *TestLogger) Reset() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.entries = nil
}
