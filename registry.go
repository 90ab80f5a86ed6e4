package eventfire

import (
	"reflect"
	"sync"
)

// registry is the ordered, mutable bag of registered handlers.
// It is thread-safe for concurrent access. Iteration order for firing
// equals registration order, and duplicates are permitted.
type registry struct {
	mu       sync.RWMutex
	handlers []Handler
}

// add appends a handler to the end of the sequence.
func (r *registry) add(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = append(r.handlers, h)
}

// remove removes the first occurrence matching h. Removing a handler that
// is not registered is a no-op. Returns true if a handler was removed.
func (r *registry) remove(h Handler) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, registered := range r.handlers {
		if sameHandler(registered, h) {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns a copy of the current sequence so that an in-flight fire
// is isolated from concurrent add/remove calls.
func (r *registry) snapshot() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.handlers) == 0 {
		return nil
	}

	out := make([]Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// count returns the number of registered handlers, counting duplicates.
func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// clear discards all registered handlers.
func (r *registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = nil
}

// sameHandler reports whether two handlers are the same registration.
// Function-kind handlers are not ==-comparable in Go, so they compare by
// code pointer; everything else with a comparable dynamic type compares by
// interface equality.
func sameHandler(a, b Handler) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	if va.Kind() == reflect.Func || vb.Kind() == reflect.Func {
		return va.Kind() == vb.Kind() && va.Pointer() == vb.Pointer()
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
