package pubsub

import "errors"

var (
	// ErrNilSubscriber is returned when a nil subscriber is passed to
	// Subscribe or Unsubscribe.
	ErrNilSubscriber = errors.New("subscriber is nil")

	// ErrNilEvent is returned when a nil event is passed to Publish or
	// PublishAsync.
	ErrNilEvent = errors.New("event is nil")

	// ErrAwaitTimeout is returned by Future.AwaitWithTimeout when the
	// dispatch has not completed within the given duration.
	ErrAwaitTimeout = errors.New("await timeout exceeded")
)
