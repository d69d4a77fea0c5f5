package pubsub

import "sync"

// registry is an ordered, copy-on-write subscriber collection.
//
// Every mutation builds a fresh backing slice and swaps it in under the write
// lock, so a slice handed out by snapshot is never modified afterwards and
// can be iterated without holding any lock. Dispatch never blocks
// registration and registration never blocks dispatch.
type registry[T any] struct {
	mu   sync.RWMutex
	subs []Subscriber[T]
}

// register appends the subscriber unless one with the same ID is already
// present. Registration order is preserved; a duplicate does not move the
// existing entry. Reports whether the subscriber was newly added.
func (r *registry[T]) register(sub Subscriber[T]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := sub.ID()
	for _, s := range r.subs {
		if s.ID() == id {
			return false
		}
	}

	next := make([]Subscriber[T], len(r.subs)+1)
	copy(next, r.subs)
	next[len(r.subs)] = sub
	r.subs = next

	return true
}

// unregister removes the subscriber with the given ID if present.
// Reports whether a removal occurred; an absent ID is a no-op.
func (r *registry[T]) unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, s := range r.subs {
		if s.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	next := make([]Subscriber[T], 0, len(r.subs)-1)
	next = append(next, r.subs[:idx]...)
	next = append(next, r.subs[idx+1:]...)
	r.subs = next

	return true
}

// snapshot returns the current backing slice. The slice is immutable once
// returned: concurrent register/unregister calls swap in new slices and never
// touch one already handed to a dispatcher.
func (r *registry[T]) snapshot() []Subscriber[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.subs
}

// size returns the number of registered subscribers.
func (r *registry[T]) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs)
}

// clear removes all subscribers and returns how many were removed.
func (r *registry[T]) clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.subs)
	r.subs = nil

	return n
}
