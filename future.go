package pubsub

import "time"

// Future is the completion handle for one asynchronous dispatch.
// It resolves once every subscriber task of that dispatch has settled,
// successfully or not. Waiting is optional: callers may fire-and-forget.
type Future struct {
	outcomes []Outcome
	done     chan struct{}
}

// Await blocks until the dispatch completes and returns the outcome list,
// one entry per subscriber in the dispatch snapshot. The returned slice is
// the caller's own copy; mutating it does not affect later Await calls.
func (f *Future) Await() []Outcome {
	<-f.done
	return f.copyOutcomes()
}

// AwaitWithTimeout waits for the dispatch to complete with a timeout.
// It bounds only the caller's wait, never the subscriber tasks: on
// ErrAwaitTimeout the tasks keep running and a later Await still yields
// their outcomes.
func (f *Future) AwaitWithTimeout(timeout time.Duration) ([]Outcome, error) {
	select {
	case <-f.done:
		return f.copyOutcomes(), nil
	case <-time.After(timeout):
		return nil, ErrAwaitTimeout
	}
}

// copyOutcomes must only be called after done is closed, when no task is
// writing its slot anymore.
func (f *Future) copyOutcomes() []Outcome {
	outcomes := make([]Outcome, len(f.outcomes))
	copy(outcomes, f.outcomes)
	return outcomes
}

// IsComplete checks whether the dispatch has completed without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
