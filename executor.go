package eventfire

import (
	"context"
	"runtime/debug"
	"time"
)

// executor runs a single handler with panic recovery and timing, and shapes
// the failure payload per the dispatcher's error-reporting flags.
type executor struct {
	errorDetail  bool
	traceback    bool
	errorHandler ErrorHandler
	panicHandler PanicHandler
}

// execute invokes one handler and converts whatever happens into an
// Outcome. index is the handler's position in the fire-time snapshot.
func (x *executor) execute(ctx context.Context, e Event, h Handler, index int) (out Outcome) {
	out.Handler = h
	start := time.Now()

	defer func() {
		out.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			out.Status = StatusFailure
			out.Value = nil
			out.Panicked = true
			out.Err = x.panicInfo(e, index, r, stack)

			// Protect the callback; a panicking diagnostic must not
			// take down the dispatch loop.
			func() {
				defer func() { _ = recover() }()
				x.panicHandler(e, r, stack)
			}()
		}
	}()

	v, err := h.Handle(ctx, e)
	if err != nil {
		out.Status = StatusFailure
		out.Err = x.errorInfo(e, index, err)

		func() {
			defer func() { _ = recover() }()
			x.errorHandler(e, h, err)
		}()
		return out
	}

	out.Status = StatusSuccess
	out.Value = v
	return out
}

// errorInfo shapes the failure payload for a returned error.
func (x *executor) errorInfo(e Event, index int, err error) error {
	if !x.errorDetail {
		return ErrHandlerFailure
	}

	he := &HandlerError{
		EventID: e.ID,
		Index:   index,
		Err:     err,
	}
	if x.traceback {
		// Returned errors carry no stack of their own; this documents
		// the dispatch site.
		he.Stack = string(debug.Stack())
	}
	return he
}

// panicInfo shapes the failure payload for a recovered panic.
func (x *executor) panicInfo(e Event, index int, value any, stack []byte) error {
	if !x.errorDetail {
		return ErrHandlerFailure
	}

	pe := &PanicError{
		EventID: e.ID,
		Index:   index,
		Value:   value,
	}
	if x.traceback {
		pe.Stack = string(stack)
	}
	return pe
}
