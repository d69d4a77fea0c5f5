package pubsub

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// Publisher owns an ordered subscriber registry and dispatches events of
// type T to it: sequentially on the caller's goroutine with Publish, or in
// parallel on an injected worker pool with PublishAsync.
//
// All methods are safe for concurrent use without external locking.
// Overlapping publish calls operate on independent snapshots and do not
// serialize with each other, so a subscriber may be invoked concurrently by
// two overlapping dispatches; subscriber implementations must tolerate that
// if producers publish concurrently.
//
// Example:
//
//	publisher := pubsub.New[OrderPlaced]()
//	publisher.Subscribe(pubsub.NewSubscriberFunc(sendConfirmation))
//	outcomes, err := publisher.Publish(ctx, OrderPlaced{ID: "ord-1"})
type Publisher[T any] struct {
	registry registry[T]
	pool     Pool
	logger   *slog.Logger

	eventsPublished atomic.Int64
	delivered       atomic.Int64
	failed          atomic.Int64
}

// Option configures a Publisher.
type Option[T any] func(*Publisher[T])

// WithLogger sets the logger for dispatch activity.
// If not set, logging is discarded.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(p *Publisher[T]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPool sets the worker pool used by PublishAsync. The pool is an
// external shared resource; the publisher never manages its lifecycle.
// If not set, a process-wide goroutine-per-task pool is used.
func WithPool[T any](pool Pool) Option[T] {
	return func(p *Publisher[T]) {
		if pool != nil {
			p.pool = pool
		}
	}
}

// New creates a publisher for events of type T.
//
// Example:
//
//	publisher := pubsub.New[OrderPlaced](
//	    pubsub.WithLogger[OrderPlaced](logger),
//	    pubsub.WithPool[OrderPlaced](pubsub.NewPool(8)),
//	)
func New[T any](opts ...Option[T]) *Publisher[T] {
	p := &Publisher[T]{
		pool:   defaultPool,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Subscribe registers a subscriber. Registration is idempotent by subscriber
// ID: it returns true when the subscriber was newly added and false when one
// with the same ID is already registered, in which case the event is still
// delivered exactly once per publish.
// Returns ErrNilSubscriber for a nil subscriber.
func (p *Publisher[T]) Subscribe(sub Subscriber[T]) (bool, error) {
	if isNil(sub) {
		return false, ErrNilSubscriber
	}

	added := p.registry.register(sub)
	if added {
		p.logger.Debug("subscriber registered",
			slog.String("subscriber_id", sub.ID()))
	}

	return added, nil
}

// Unsubscribe removes a subscriber by its ID. It returns true when a removal
// occurred and false when no subscriber with that ID was registered.
// Returns ErrNilSubscriber for a nil subscriber.
func (p *Publisher[T]) Unsubscribe(sub Subscriber[T]) (bool, error) {
	if isNil(sub) {
		return false, ErrNilSubscriber
	}

	removed := p.registry.unregister(sub.ID())
	if removed {
		p.logger.Debug("subscriber unregistered",
			slog.String("subscriber_id", sub.ID()))
	}

	return removed, nil
}

// Publish delivers the event to every subscriber registered at the moment
// the call begins, in registration order, on the calling goroutine. It
// blocks until every subscriber has been attempted and returns one Outcome
// per subscriber. A failing subscriber never prevents delivery to the ones
// after it; inspect the outcomes to learn which failed.
// Registry mutations made while the dispatch is in flight affect only
// future publishes, never this one.
// Returns ErrNilEvent for a nil event.
func (p *Publisher[T]) Publish(ctx context.Context, event T) ([]Outcome, error) {
	if isNil(event) {
		return nil, ErrNilEvent
	}

	snapshot := p.registry.snapshot()
	p.eventsPublished.Add(1)

	return p.dispatchSync(ctx, snapshot, event), nil
}

// PublishAsync delivers the event to every subscriber registered at the
// moment the call begins, one worker-pool task per subscriber, and returns a
// Future immediately without blocking. The Future resolves once every task
// has settled; no ordering is guaranteed across tasks. Waiting on the Future
// is optional.
// Returns ErrNilEvent for a nil event.
func (p *Publisher[T]) PublishAsync(ctx context.Context, event T) (*Future, error) {
	if isNil(event) {
		return nil, ErrNilEvent
	}

	snapshot := p.registry.snapshot()
	p.eventsPublished.Add(1)

	return p.dispatchAsync(ctx, snapshot, event), nil
}

// SubscriberCount returns the number of currently registered subscribers.
func (p *Publisher[T]) SubscriberCount() int {
	return p.registry.size()
}

// HasSubscribers checks whether at least one subscriber is registered.
func (p *Publisher[T]) HasSubscribers() bool {
	return p.registry.size() > 0
}

// Clear removes all subscribers and returns how many were removed.
// Dispatches already in flight keep their snapshots and are unaffected.
func (p *Publisher[T]) Clear() int {
	n := p.registry.clear()
	if n > 0 {
		p.logger.Debug("registry cleared", slog.Int("removed", n))
	}

	return n
}

// PublisherStats provides observability counters for monitoring and debugging.
type PublisherStats struct {
	EventsPublished int64 // Publish/PublishAsync calls accepted
	Delivered       int64 // Subscriber invocations that succeeded
	Failed          int64 // Subscriber invocations that failed or panicked
	Subscribers     int   // Currently registered subscribers
}

// Stats returns a point-in-time snapshot of publisher activity.
// Async dispatch counters are updated as tasks settle, so totals for an
// in-flight PublishAsync appear once its Future resolves.
func (p *Publisher[T]) Stats() PublisherStats {
	return PublisherStats{
		EventsPublished: p.eventsPublished.Load(),
		Delivered:       p.delivered.Load(),
		Failed:          p.failed.Load(),
		Subscribers:     p.registry.size(),
	}
}
