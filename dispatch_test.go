package pubsub_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pubsub"
)

func TestDispatch_PanicIsolationSync(t *testing.T) {
	t.Parallel()

	publisher := pubsub.New[string]()

	_, err := publisher.Subscribe(pubsub.NewSubscriber("panics", func(ctx context.Context, event string) error {
		panic("kaboom")
	}))
	require.NoError(t, err)

	var invoked atomic.Bool
	_, err = publisher.Subscribe(pubsub.NewSubscriber("survives", func(ctx context.Context, event string) error {
		invoked.Store(true)
		return nil
	}))
	require.NoError(t, err)

	outcomes, err := publisher.Publish(context.Background(), "x")
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].Delivered())
	assert.Contains(t, outcomes[0].Err.Error(), "panicked")
	assert.Contains(t, outcomes[0].Err.Error(), "kaboom")
	assert.True(t, outcomes[1].Delivered())
	assert.True(t, invoked.Load(), "a panicking subscriber must not prevent later ones")
}

func TestDispatch_PanicIsolationAsync(t *testing.T) {
	t.Parallel()

	publisher := pubsub.New[string]()

	var invoked atomic.Int32
	_, err := publisher.Subscribe(pubsub.NewSubscriber("panics", func(ctx context.Context, event string) error {
		panic("kaboom")
	}))
	require.NoError(t, err)

	for _, id := range []string{"A", "B"} {
		_, err = publisher.Subscribe(pubsub.NewSubscriber(id, func(ctx context.Context, event string) error {
			invoked.Add(1)
			return nil
		}))
		require.NoError(t, err)
	}

	future, err := publisher.PublishAsync(context.Background(), "x")
	require.NoError(t, err)

	outcomes := future.Await()
	require.Len(t, outcomes, 3)
	assert.Equal(t, int32(2), invoked.Load())

	failed := pubsub.Failed(outcomes)
	require.Len(t, failed, 1)
	assert.Equal(t, "panics", failed[0].SubscriberID)
}

func TestDispatch_OutcomeErrorWrapsCallbackError(t *testing.T) {
	t.Parallel()

	publisher := pubsub.New[string]()
	errCause := errors.New("connection refused")

	_, err := publisher.Subscribe(pubsub.NewSubscriber("flaky", func(ctx context.Context, event string) error {
		return errCause
	}))
	require.NoError(t, err)

	outcomes, err := publisher.Publish(context.Background(), "x")
	require.NoError(t, err)

	require.Len(t, outcomes, 1)
	assert.ErrorIs(t, outcomes[0].Err, errCause)
	assert.Contains(t, outcomes[0].Err.Error(), "flaky")
}

func TestDispatch_ContextForwardedToCallbacks(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-1")

	publisher := pubsub.New[string]()

	var seenSync, seenAsync atomic.Value
	_, err := publisher.Subscribe(pubsub.NewSubscriber("sync", func(ctx context.Context, event string) error {
		seenSync.Store(ctx.Value(ctxKey{}))
		return nil
	}))
	require.NoError(t, err)

	_, err = publisher.Publish(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "trace-1", seenSync.Load())

	publisher.Clear()
	_, err = publisher.Subscribe(pubsub.NewSubscriber("async", func(ctx context.Context, event string) error {
		seenAsync.Store(ctx.Value(ctxKey{}))
		return nil
	}))
	require.NoError(t, err)

	future, err := publisher.PublishAsync(ctx, "x")
	require.NoError(t, err)
	future.Await()
	assert.Equal(t, "trace-1", seenAsync.Load())
}

func TestDispatch_EventValueReachesEverySubscriber(t *testing.T) {
	t.Parallel()

	type payment struct {
		ID     string
		Amount float64
	}

	publisher := pubsub.New[payment]()

	var got atomic.Value
	_, err := publisher.Subscribe(pubsub.NewSubscriber("ledger", func(ctx context.Context, event payment) error {
		got.Store(event)
		return nil
	}))
	require.NoError(t, err)

	evt := payment{ID: "pay-7", Amount: 12.5}
	_, err = publisher.Publish(context.Background(), evt)
	require.NoError(t, err)

	assert.Equal(t, evt, got.Load())
}
