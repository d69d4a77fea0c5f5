package pubsub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pubsub"
)

func TestNewSubscriber(t *testing.T) {
	t.Parallel()

	t.Run("explicit ID is kept", func(t *testing.T) {
		t.Parallel()

		sub := pubsub.NewSubscriber("audit-log", func(ctx context.Context, event string) error {
			return nil
		})
		assert.Equal(t, "audit-log", sub.ID())
	})

	t.Run("empty ID gets generated", func(t *testing.T) {
		t.Parallel()

		sub := pubsub.NewSubscriber("", func(ctx context.Context, event string) error {
			return nil
		})
		assert.NotEmpty(t, sub.ID())
	})

	t.Run("callback receives the event", func(t *testing.T) {
		t.Parallel()

		var got string
		sub := pubsub.NewSubscriber("echo", func(ctx context.Context, event string) error {
			got = event
			return nil
		})

		require.NoError(t, sub.OnEvent(context.Background(), "hello"))
		assert.Equal(t, "hello", got)
	})
}

func TestNewSubscriberFunc(t *testing.T) {
	t.Parallel()

	t.Run("generates distinct identities", func(t *testing.T) {
		t.Parallel()

		fn := func(ctx context.Context, event string) error { return nil }
		a := pubsub.NewSubscriberFunc(fn)
		b := pubsub.NewSubscriberFunc(fn)

		assert.NotEmpty(t, a.ID())
		assert.NotEmpty(t, b.ID())
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("same function registers twice under two identities", func(t *testing.T) {
		t.Parallel()

		publisher := pubsub.New[string]()
		invoked := 0
		fn := func(ctx context.Context, event string) error {
			invoked++
			return nil
		}

		for i := 0; i < 2; i++ {
			added, err := publisher.Subscribe(pubsub.NewSubscriberFunc(fn))
			require.NoError(t, err)
			assert.True(t, added)
		}

		outcomes, err := publisher.Publish(context.Background(), "x")
		require.NoError(t, err)
		assert.Len(t, outcomes, 2)
		assert.Equal(t, 2, invoked)
	})
}
