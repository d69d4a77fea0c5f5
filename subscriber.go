package pubsub

import (
	"context"

	"github.com/google/uuid"
)

// SubscriberFunc is a type-safe callback signature for receiving events of type T.
type SubscriberFunc[T any] func(ctx context.Context, event T) error

// Subscriber receives events of type T.
// Implementations are registered with a Publisher to be notified on publish.
type Subscriber[T any] interface {
	// ID returns a stable identifier for this subscriber. It is the identity
	// used for duplicate detection on Subscribe and for lookup on Unsubscribe,
	// so it must not change over the subscriber's lifetime.
	ID() string

	// OnEvent handles a single published event.
	OnEvent(ctx context.Context, event T) error
}

// NewSubscriber creates a subscriber with an explicit identifier.
// Use this when you need deterministic identity, e.g. to unsubscribe later
// from a different code path or to guarantee at-most-one registration for a
// well-known component.
//
// An empty id is replaced with a generated UUID.
//
// Example:
//
//	sub := pubsub.NewSubscriber("audit-log", func(ctx context.Context, evt OrderPlaced) error {
//	    return audit.Record(ctx, evt)
//	})
func NewSubscriber[T any](id string, fn SubscriberFunc[T]) Subscriber[T] {
	if id == "" {
		id = uuid.New().String()
	}

	return &subscriberFuncWrapper[T]{
		id: id,
		fn: fn,
	}
}

// NewSubscriberFunc creates a subscriber with an auto-generated UUID identifier.
// Each call yields a distinct identity, so the same function can be registered
// multiple times as independent subscribers.
//
// Example:
//
//	sub := pubsub.NewSubscriberFunc(func(ctx context.Context, evt OrderPlaced) error {
//	    return sendConfirmation(ctx, evt)
//	})
func NewSubscriberFunc[T any](fn SubscriberFunc[T]) Subscriber[T] {
	return &subscriberFuncWrapper[T]{
		id: uuid.New().String(),
		fn: fn,
	}
}

// subscriberFuncWrapper adapts a plain function to the Subscriber interface.
type subscriberFuncWrapper[T any] struct {
	id string
	fn SubscriberFunc[T]
}

// ID returns the subscriber's stable identifier.
func (s *subscriberFuncWrapper[T]) ID() string {
	return s.id
}

// OnEvent invokes the wrapped callback.
func (s *subscriberFuncWrapper[T]) OnEvent(ctx context.Context, event T) error {
	return s.fn(ctx, event)
}
