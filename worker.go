package eventfire

import (
	"context"
	"sync"
)

// asyncTask captures a fire request at enqueue time: the event arguments
// and the registry snapshot. It is owned exclusively by the worker queue
// until consumed.
type asyncTask struct {
	ctx      context.Context
	event    Event
	handlers []Handler
}

// asyncWorker serializes all asynchronous fires onto a single goroutine.
// The queue is unbounded so that enqueue always succeeds immediately;
// because exactly one goroutine drains it, tasks execute strictly in FIFO
// order and handlers of different fires never run concurrently.
type asyncWorker struct {
	dispatch func(asyncTask)

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []asyncTask
	started bool
	stopped bool
	done    chan struct{}
}

// newAsyncWorker creates a worker that hands consumed tasks to dispatch.
// The goroutine is started lazily on the first enqueue.
func newAsyncWorker(dispatch func(asyncTask)) *asyncWorker {
	w := &asyncWorker{
		dispatch: dispatch,
		done:     make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// enqueue appends a task and starts the worker goroutine if this is the
// first enqueue. Returns false when the worker has been stopped.
func (w *asyncWorker) enqueue(t asyncTask) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return false
	}

	w.queue = append(w.queue, t)
	if !w.started {
		w.started = true
		go w.run()
	}
	w.cond.Signal()
	return true
}

// run drains the queue strictly FIFO, blocking only when the queue is
// empty. It exits once the worker is stopped and the queue is drained.
func (w *asyncWorker) run() {
	defer close(w.done)

	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.stopped {
			w.cond.Wait()
		}
		if len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		t := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		w.dispatch(t)
	}
}

// depth returns the number of queued tasks.
func (w *asyncWorker) depth() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.queue)
}

// stop closes intake and waits for the queue to drain or the context to
// expire. Stopping a worker that never started, or stopping twice, returns
// ErrNotRunning; either way intake stays closed.
func (w *asyncWorker) stop(ctx context.Context) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return ErrNotRunning
	}
	w.stopped = true
	started := w.started
	w.cond.Signal()
	w.mu.Unlock()

	if !started {
		return ErrNotRunning
	}

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
