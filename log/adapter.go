package log

// Adapter exposes a single backend logger handle via the uniform 'Logger' contract, dispatching through the accessor
// set resolved by the providing backend's provider.
//
// An adapter is fully determined at construction and never changes; using one concurrently is as safe as using the
// wrapped backend handle concurrently. The adapter adds no failure handling of its own, anything raised by a backend
// write propagates to the caller unchanged.
type Adapter[H any] struct {
	handle    H
	accessors *AccessorSet[H]
}

var _ Logger = Adapter[any]{}

// NewAdapter returns an adapter exposing the given backend handle via the uniform 'Logger' contract.
func NewAdapter[H any](handle H, accessors *AccessorSet[H]) Adapter[H] {
	return Adapter[H]{handle: handle, accessors: accessors}
}

// Log implements the 'Logger' interface, the message producer is invoked exactly once and only when the level is
// enabled.
func (a Adapter[H]) Log(level Level, message MessageFunc) {
	accessors := a.accessors.forLevel(level)

	if !accessors.Enabled(a.handle) {
		return
	}

	accessors.Write(a.handle, message())
}

// LogError implements the 'Logger' interface, the given error is handed to the backend unchanged.
func (a Adapter[H]) LogError(level Level, message MessageFunc, err error) {
	accessors := a.accessors.forLevel(level)

	if !accessors.Enabled(a.handle) {
		return
	}

	accessors.WriteError(a.handle, message(), err)
}
