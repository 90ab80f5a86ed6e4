package eventfire

import (
	"errors"
	"strconv"
)

// Sentinel errors for the dispatcher.
var (
	// ErrHandlerFailure marks a failed handler execution. It is the
	// entire failure payload when error detail capture is disabled, and
	// matches every detailed failure via errors.Is.
	ErrHandlerFailure = errors.New("handler execution failed")

	// ErrHandlerPanic is matched by failures caused by a panic.
	ErrHandlerPanic = errors.New("handler panicked")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNotRunning is returned by Stop when the async worker never
	// started or has already been stopped.
	ErrNotRunning = errors.New("async worker is not running")

	// ErrStopped is the failure payload of async fires issued after the
	// dispatcher has been stopped.
	ErrStopped = errors.New("dispatcher is stopped")
)

// HandlerError wraps an error returned by a handler with fire context.
type HandlerError struct {
	// EventID is the identifier of the fired event.
	EventID string

	// Index is the handler's position in the fire-time snapshot.
	Index int

	// Err is the underlying error returned by the handler.
	Err error

	// Stack is a formatted stack trace captured where the failure was
	// observed. Empty unless traceback capture is enabled.
	Stack string
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return "handler " + strconv.Itoa(e.Index) + " failed for event " + e.EventID + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match HandlerError with ErrHandlerFailure.
func (e *HandlerError) Is(target error) bool {
	return target == ErrHandlerFailure
}

// PanicError wraps a panic value recovered from a handler.
type PanicError struct {
	// EventID is the identifier of the fired event.
	EventID string

	// Index is the handler's position in the fire-time snapshot.
	Index int

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the point of the panic. Empty unless
	// traceback capture is enabled.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "handler " + strconv.Itoa(e.Index) + " panicked for event " + e.EventID
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic and
// ErrHandlerFailure.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic || target == ErrHandlerFailure
}
