package eventfire

import (
	"context"
	"time"
)

// Event is the payload delivered to every handler of a fire. ID names the
// event instance; Args and Fields carry arbitrary positional and named
// arguments supplied by the firing caller.
type Event struct {
	// ID is the event identifier.
	ID string

	// Args contains positional arguments, in the order given to Fire.
	Args []any

	// Fields contains named arguments. May be nil.
	Fields map[string]any
}

// Handler is the interface for event handlers.
// A handler may return an arbitrary result value; a non-nil error or a
// panic is captured as a failure outcome and never aborts the fire.
type Handler interface {
	Handle(ctx context.Context, e Event) (any, error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, e Event) (any, error)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, e Event) (any, error) {
	return f(ctx, e)
}

// Mode selects how fired events are delivered to handlers.
type Mode int

const (
	// ModeSync executes handlers inline on the firing goroutine and
	// returns full results. This is the default.
	ModeSync Mode = iota

	// ModeAsync queues the fire request for the background worker and
	// returns pending placeholders immediately.
	ModeAsync
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSync:
		return "sync"
	case ModeAsync:
		return "async"
	default:
		return "unknown"
	}
}

// ErrorHandler is a diagnostics callback invoked when a handler returns an
// error. For async fires it is the only externally observable trace of the
// failure.
type ErrorHandler func(e Event, handler Handler, err error)

// PanicHandler is a diagnostics callback invoked when a handler panics.
// It receives the event being processed, the panic value, and the stack
// trace captured at the point of the panic.
type PanicHandler func(e Event, panicValue any, stack []byte)

// defaultErrorHandler is a no-op.
func defaultErrorHandler(e Event, handler Handler, err error) {}

// defaultPanicHandler is a no-op. Panics are already isolated into failure
// outcomes; hosts that want visibility install their own handler.
func defaultPanicHandler(e Event, panicValue any, stack []byte) {}

// Stats contains dispatcher statistics.
type Stats struct {
	// Fired is the total number of fire calls.
	Fired uint64

	// HandlersExecuted is the total number of handler executions.
	HandlersExecuted uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// QueueDepth is the current number of queued async fire requests.
	QueueDepth int

	// TotalDuration is the cumulative time spent executing handlers.
	TotalDuration time.Duration

	// LastFireDuration is the wall time of the most recently completed
	// fire (sync) or worker task (async).
	LastFireDuration time.Duration
}
