// Package pubsub provides a type-safe, in-process publish/subscribe
// primitive built on Go generics. A Publisher[T] owns an ordered registry of
// subscribers and delivers events of type T to them either synchronously in
// registration order on the caller's goroutine, or in parallel on a shared
// worker pool with a future-style completion handle. Per-subscriber failures
// are always isolated and reported as outcomes, never re-raised.
//
// # Core Components
//
// Subscriber is a single-method capability for receiving events. Subscribers
// carry a stable identifier used for duplicate detection and unsubscription;
// NewSubscriberFunc generates a UUID identity, NewSubscriber accepts an
// explicit one.
//
// Publisher composes the registry with both dispatch strategies and exposes
// Subscribe, Unsubscribe, Publish, PublishAsync, and observability helpers.
// All methods are safe for concurrent use.
//
// Outcome records the per-subscriber delivery result of one dispatch. Every
// subscriber attempted gets exactly one outcome: delivered, failed with the
// callback's error, or failed with a recovered panic.
//
// Future is the completion handle returned by PublishAsync. It resolves only
// after every subscriber task of that dispatch has settled and then yields
// the full outcome list. Waiting is optional; producers may fire-and-forget.
//
// Pool abstracts the worker pool used by asynchronous dispatch. It is an
// injected, shared resource: the publisher never creates, sizes, or shuts
// down the pool it is given, and several publishers may share one. NewPool
// builds either a goroutine-per-task pool or a semaphore-bounded one.
//
// Decorator enables middleware-style wrapping of subscriber callbacks for
// cross-cutting concerns like logging and event filtering.
//
// # Basic Usage
//
//	import (
//		"context"
//		"log/slog"
//		"os"
//
//		"github.com/dmitrymomot/pubsub"
//	)
//
//	type OrderPlaced struct {
//		OrderID string
//		Amount  float64
//	}
//
//	func main() {
//		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//
//		publisher := pubsub.New[OrderPlaced](
//			pubsub.WithLogger[OrderPlaced](logger),
//		)
//
//		publisher.Subscribe(pubsub.NewSubscriber("confirmation-email",
//			func(ctx context.Context, evt OrderPlaced) error {
//				return sendConfirmation(ctx, evt)
//			}))
//
//		publisher.Subscribe(pubsub.NewSubscriber("inventory",
//			func(ctx context.Context, evt OrderPlaced) error {
//				return reserveStock(ctx, evt)
//			}))
//
//		// Synchronous: subscribers run in registration order on this goroutine.
//		outcomes, err := publisher.Publish(context.Background(), OrderPlaced{
//			OrderID: "ord-123",
//			Amount:  99.99,
//		})
//		if err != nil {
//			logger.Error("publish rejected", "error", err)
//		}
//		for _, failed := range pubsub.Failed(outcomes) {
//			logger.Warn("subscriber failed",
//				"subscriber_id", failed.SubscriberID,
//				"error", failed.Err)
//		}
//	}
//
// # Asynchronous Dispatch
//
// PublishAsync never blocks the caller. It snapshots the registry, submits
// one task per subscriber to the worker pool, and returns a Future:
//
//	pool := pubsub.NewPool(8) // at most 8 concurrent subscriber invocations
//	publisher := pubsub.New[OrderPlaced](pubsub.WithPool[OrderPlaced](pool))
//
//	future, err := publisher.PublishAsync(ctx, evt)
//	if err != nil {
//		return err
//	}
//
//	// Optional: wait for every subscriber task to settle.
//	outcomes := future.Await()
//
// AwaitWithTimeout bounds only the wait, never the tasks: after
// ErrAwaitTimeout the subscriber tasks keep running and a later Await still
// returns their outcomes.
//
// # Concurrency Contract
//
// The registry uses copy-on-write snapshot isolation. Each publish call
// captures an immutable snapshot of the subscriber list; Subscribe and
// Unsubscribe swap in fresh backing slices and affect only future publishes,
// so registry mutation never corrupts an in-flight dispatch and dispatch
// never blocks registration.
//
// Overlapping publish calls do not serialize with each other and may invoke
// the same subscriber concurrently. Subscriber implementations must tolerate
// concurrent invocation if producers publish concurrently.
//
// Registration is idempotent by subscriber ID: subscribing an ID twice
// returns false the second time and the subscriber is notified once per
// event. Register the same function through NewSubscriberFunc twice to
// receive two notifications under two identities.
//
// The package imposes no timeout or cancellation on subscriber callbacks. A
// callback that never returns blocks Publish indefinitely and leaves the
// corresponding PublishAsync task permanently unsettled. The dispatch
// context is forwarded to every callback, so producers that need deadlines
// attach them to the context and honor it inside the callback.
//
// # Error Handling
//
// Only argument validation aborts an operation: ErrNilSubscriber from
// Subscribe/Unsubscribe and ErrNilEvent from Publish/PublishAsync. Errors
// returned by callbacks, and panics raised by them, are captured at the
// dispatch boundary into that subscriber's Outcome; nothing is retried and
// nothing is re-raised. A producer that wants all-or-nothing semantics
// inspects the outcome list itself.
package pubsub
