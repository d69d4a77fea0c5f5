package pubsub

import (
	"context"
	"log/slog"
	"time"
)

// Decorator wraps a subscriber callback to add cross-cutting functionality.
// It follows the same pattern as HTTP middleware, allowing decorators to be
// composed and applied in order.
type Decorator[T any] func(SubscriberFunc[T]) SubscriberFunc[T]

// Decorate applies a series of decorators to a subscriber callback.
// Decorators are applied in the order they are listed: the first decorator
// becomes the outermost wrapper (executes first).
//
// Example:
//
//	fn := pubsub.Decorate(
//	    handleOrder,
//	    pubsub.Logging[OrderPlaced](logger),
//	    pubsub.Filter(func(evt OrderPlaced) bool { return evt.Amount > 0 }),
//	)
//	publisher.Subscribe(pubsub.NewSubscriber("orders", fn))
func Decorate[T any](fn SubscriberFunc[T], decorators ...Decorator[T]) SubscriberFunc[T] {
	// Apply from last to first so the first decorator wraps outermost.
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}

	return fn
}

// Logging returns a decorator that logs every invocation of the callback:
// a debug line on success, an error line on failure.
func Logging[T any](logger *slog.Logger) Decorator[T] {
	return func(next SubscriberFunc[T]) SubscriberFunc[T] {
		return func(ctx context.Context, event T) error {
			start := time.Now()

			if err := next(ctx, event); err != nil {
				logger.ErrorContext(ctx, "event callback failed",
					slog.Duration("duration", time.Since(start)),
					slog.String("error", err.Error()))

				return err
			}

			logger.DebugContext(ctx, "event callback completed",
				slog.Duration("duration", time.Since(start)))

			return nil
		}
	}
}

// Filter returns a decorator that invokes the callback only for events the
// predicate accepts. A skipped event counts as delivered in the dispatch
// outcome.
func Filter[T any](pred func(T) bool) Decorator[T] {
	return func(next SubscriberFunc[T]) SubscriberFunc[T] {
		return func(ctx context.Context, event T) error {
			if !pred(event) {
				return nil
			}

			return next(ctx, event)
		}
	}
}
