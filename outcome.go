package eventfire

import "time"

// Status classifies the outcome of a single handler for a single fire.
type Status int

const (
	// StatusSuccess means the handler returned normally; Outcome.Value
	// holds its result.
	StatusSuccess Status = iota

	// StatusFailure means the handler returned an error or panicked;
	// Outcome.Err holds the captured failure information.
	StatusFailure

	// StatusPending means the fire was queued for asynchronous execution
	// and no result is available yet. Pending outcomes are never updated.
	StatusPending
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Outcome represents the result of one handler for one fire.
type Outcome struct {
	// Status classifies the outcome.
	Status Status

	// Value is the handler's return value. Nil unless Status is
	// StatusSuccess.
	Value any

	// Err is the captured failure information. Nil unless Status is
	// StatusFailure. Its detail depends on the dispatcher's
	// error-reporting flags: the bare ErrHandlerFailure marker, a
	// *HandlerError, or a *PanicError.
	Err error

	// Panicked is true if the failure was a panic rather than a
	// returned error.
	Panicked bool

	// Handler is the handler this outcome belongs to.
	Handler Handler

	// Duration is how long the handler took to execute. Zero for
	// pending outcomes.
	Duration time.Duration
}

// IsSuccess returns true if the handler completed without failure.
func (o Outcome) IsSuccess() bool {
	return o.Status == StatusSuccess
}

// IsFailure returns true if the handler returned an error or panicked.
func (o Outcome) IsFailure() bool {
	return o.Status == StatusFailure
}

// IsPending returns true if the handler has not been executed yet.
func (o Outcome) IsPending() bool {
	return o.Status == StatusPending
}

// FireResult is the ordered collection of outcomes for one fire, one per
// handler in the registry snapshot taken at fire time, in snapshot order.
type FireResult []Outcome

// Succeeded reports whether every outcome completed successfully.
func (r FireResult) Succeeded() bool {
	for _, o := range r {
		if !o.IsSuccess() {
			return false
		}
	}
	return true
}

// Failed returns the outcomes that captured a handler failure.
func (r FireResult) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r {
		if o.IsFailure() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Pending reports whether the result holds only pending placeholders.
// True for the empty result of an async fire with no handlers registered.
func (r FireResult) Pending() bool {
	for _, o := range r {
		if !o.IsPending() {
			return false
		}
	}
	return true
}
