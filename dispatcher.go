package eventfire

import (
	"context"
	"sync/atomic"
	"time"
)

// Dispatcher is a single-channel event dispatcher: an ordered registry of
// handlers fired together, in registration order, with per-handler result
// capture. It is safe for concurrent use.
type Dispatcher struct {
	config   config
	registry registry
	exec     executor
	worker   *asyncWorker // nil in sync mode

	// Stats
	fired    atomic.Uint64
	executed atomic.Uint64
	errs     atomic.Uint64
	panics   atomic.Uint64
	totalNs  atomic.Int64
	lastNs   atomic.Int64
}

// New creates a dispatcher with the given options.
func New(opts ...Option) *Dispatcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dispatcher{
		config: cfg,
		exec: executor{
			errorDetail:  cfg.errorDetail,
			traceback:    cfg.traceback,
			errorHandler: cfg.errorHandler,
			panicHandler: cfg.panicHandler,
		},
	}

	if cfg.mode == ModeAsync {
		d.worker = newAsyncWorker(d.runTask)
	}

	return d
}

// Add registers a handler. Registration never constrains or validates the
// handler beyond a nil check; duplicate registrations are permitted and
// each occurrence is invoked on fire.
func (d *Dispatcher) Add(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	d.registry.add(h)
	return nil
}

// AddFunc is a convenience method for registering a function handler.
func (d *Dispatcher) AddFunc(fn HandlerFunc) error {
	if fn == nil {
		return ErrNilHandler
	}
	return d.Add(fn)
}

// Remove unregisters the first matching occurrence of h. Removing a
// handler that is not registered is a no-op, not an error.
//
// Function handlers compare by code pointer: two closures created from the
// same function literal are considered the same handler. Other handler
// types compare by interface equality.
func (d *Dispatcher) Remove(h Handler) {
	if h == nil {
		return
	}
	d.registry.remove(h)
}

// RemoveFunc is a convenience method for unregistering a function handler.
func (d *Dispatcher) RemoveFunc(fn HandlerFunc) {
	if fn == nil {
		return
	}
	d.Remove(fn)
}

// Len returns the number of registered handlers, counting duplicates.
func (d *Dispatcher) Len() int {
	return d.registry.count()
}

// Clear discards all registered handlers.
func (d *Dispatcher) Clear() {
	d.registry.clear()
}

// Mode returns the configured delivery mode.
func (d *Dispatcher) Mode() Mode {
	return d.config.mode
}

// Fire fires an event with the given identifier and positional arguments.
// See FireEvent for delivery semantics.
func (d *Dispatcher) Fire(ctx context.Context, id string, args ...any) FireResult {
	return d.FireEvent(ctx, Event{ID: id, Args: args})
}

// FireEvent fires an event against a snapshot of the registry taken
// atomically at fire time; add/remove calls made during the fire affect
// only future fires.
//
// In sync mode every handler executes inline on the calling goroutine, in
// snapshot order, and the returned result holds one success or failure
// outcome per handler. A failing handler never prevents the remaining
// handlers from running.
//
// In async mode the request is queued for the background worker and the
// returned result holds one pending outcome per handler; real results are
// never delivered back to the caller. After Stop, async fires return
// failure outcomes carrying ErrStopped.
//
// The context is passed through to handlers, which may honor it; the
// dispatcher itself never cancels between handlers.
func (d *Dispatcher) FireEvent(ctx context.Context, e Event) FireResult {
	if ctx == nil {
		ctx = context.Background()
	}

	handlers := d.registry.snapshot()
	d.fired.Add(1)

	if d.config.mode == ModeAsync {
		return d.fireAsync(ctx, e, handlers)
	}
	return d.fireSync(ctx, e, handlers)
}

// fireSync executes every handler inline and collects full results.
func (d *Dispatcher) fireSync(ctx context.Context, e Event, handlers []Handler) FireResult {
	start := time.Now()

	results := make(FireResult, len(handlers))
	for i, h := range handlers {
		out := d.exec.execute(ctx, e, h, i)
		d.record(out)
		results[i] = out
	}

	elapsed := time.Since(start)
	d.totalNs.Add(elapsed.Nanoseconds())
	d.lastNs.Store(elapsed.Nanoseconds())

	return results
}

// fireAsync enqueues the fire request and returns pending placeholders.
func (d *Dispatcher) fireAsync(ctx context.Context, e Event, handlers []Handler) FireResult {
	accepted := d.worker.enqueue(asyncTask{
		ctx:      ctx,
		event:    e,
		handlers: handlers,
	})

	results := make(FireResult, len(handlers))
	for i, h := range handlers {
		if accepted {
			results[i] = Outcome{Status: StatusPending, Handler: h}
		} else {
			results[i] = Outcome{Status: StatusFailure, Err: ErrStopped, Handler: h}
		}
	}
	return results
}

// runTask executes one queued fire on the worker goroutine. The enqueuing
// caller is long gone, so outcomes feed only the stats counters and the
// diagnostics callbacks.
func (d *Dispatcher) runTask(t asyncTask) {
	start := time.Now()

	for i, h := range t.handlers {
		out := d.exec.execute(t.ctx, t.event, h, i)
		d.record(out)
	}

	elapsed := time.Since(start)
	d.totalNs.Add(elapsed.Nanoseconds())
	d.lastNs.Store(elapsed.Nanoseconds())
}

// record updates the execution counters for one outcome.
func (d *Dispatcher) record(out Outcome) {
	d.executed.Add(1)
	switch {
	case out.Panicked:
		d.panics.Add(1)
	case out.Err != nil:
		d.errs.Add(1)
	}
}

// Stats returns current dispatcher statistics.
// Counters are read without a mutex, so values may be slightly inconsistent
// while fires are in flight.
func (d *Dispatcher) Stats() Stats {
	s := Stats{
		Fired:            d.fired.Load(),
		HandlersExecuted: d.executed.Load(),
		HandlerErrors:    d.errs.Load(),
		HandlerPanics:    d.panics.Load(),
		TotalDuration:    time.Duration(d.totalNs.Load()),
		LastFireDuration: time.Duration(d.lastNs.Load()),
	}
	if d.worker != nil {
		s.QueueDepth = d.worker.depth()
	}
	return s
}

// Stop shuts down the async worker gracefully, waiting for queued fires to
// drain or the context to expire. It returns ErrNotRunning for a sync-mode
// dispatcher, for a worker that never started, or when called twice; in
// every case subsequent async fires fail with ErrStopped.
func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.worker == nil {
		return ErrNotRunning
	}
	return d.worker.stop(ctx)
}
