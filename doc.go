// Package eventfire provides a minimal in-process event dispatcher.
//
// A Dispatcher is an ordered, mutable registry of handlers that are all
// invoked whenever an event is fired. One Dispatcher instance represents
// exactly one event channel: there is no topic hierarchy, no handler
// priorities, and no delivery guarantees beyond "every handler in the
// fire-time snapshot runs once, in registration order".
//
// # Delivery Modes
//
// Events can be delivered synchronously or asynchronously:
//
//   - Sync: handlers execute inline on the caller's goroutine, one after
//     another, and Fire returns the full result for every handler.
//   - Async: the fire request is queued and Fire returns immediately with
//     pending placeholders; a single background worker executes handlers
//     later, strictly in enqueue order.
//
// Synchronous delivery is deterministic and lets later handlers observe the
// side effects of earlier ones. Asynchronous delivery trades result
// visibility for non-blocking behavior: real results are never delivered
// back to the firing caller.
//
// # Failure Isolation
//
// A handler that returns an error or panics never aborts the fire. The
// failure is captured into its Outcome and dispatch continues with the next
// handler. The amount of detail captured is controlled by WithErrorDetail
// and WithTraceback. Failures inside the async worker cannot be observed by
// any caller; the diagnostics callbacks (WithErrorHandler, WithPanicHandler)
// are their only external trace.
//
// # Basic Usage
//
//	d := eventfire.New()
//	d.AddFunc(func(ctx context.Context, e eventfire.Event) (any, error) {
//	    fmt.Println("got", e.ID)
//	    return true, nil
//	})
//
//	result := d.Fire(context.Background(), "config.changed", "payload")
//	for _, out := range result {
//	    if out.Status == eventfire.StatusFailure {
//	        log.Printf("handler failed: %v", out.Err)
//	    }
//	}
//
// Asynchronous mode:
//
//	d := eventfire.New(eventfire.WithMode(eventfire.ModeAsync))
//	d.Fire(context.Background(), "tick") // returns pending placeholders
//	defer d.Stop(context.Background())   // drain the worker on shutdown
//
// # Thread Safety
//
// The Dispatcher is safe for concurrent use. Handlers can be added and
// removed while a fire is in flight; each fire operates on an immutable
// snapshot of the registry taken at fire time, so concurrent mutation only
// affects future fires. Individual handlers must manage their own thread
// safety.
package eventfire
