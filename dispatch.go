package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// attempt invokes a single subscriber and converts a returned error or a
// panic into that subscriber's outcome. Failures never escape the dispatch
// boundary.
func (p *Publisher[T]) attempt(ctx context.Context, sub Subscriber[T], event T) (out Outcome) {
	out = Outcome{SubscriberID: sub.ID()}
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("subscriber %s panicked: %v", sub.ID(), r)
			p.failed.Add(1)
			p.logger.ErrorContext(ctx, "subscriber panicked",
				slog.String("subscriber_id", sub.ID()),
				slog.Duration("duration", time.Since(start)),
				slog.Any("panic", r))
		}
	}()

	if err := sub.OnEvent(ctx, event); err != nil {
		out.Err = fmt.Errorf("subscriber %s failed: %w", sub.ID(), err)
		p.failed.Add(1)
		p.logger.ErrorContext(ctx, "subscriber failed",
			slog.String("subscriber_id", sub.ID()),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))

		return out
	}

	p.delivered.Add(1)
	p.logger.DebugContext(ctx, "subscriber notified",
		slog.String("subscriber_id", sub.ID()),
		slog.Duration("duration", time.Since(start)))

	return out
}

// dispatchSync walks the snapshot in registration order on the calling
// goroutine and returns only after every subscriber has been attempted.
func (p *Publisher[T]) dispatchSync(ctx context.Context, snapshot []Subscriber[T], event T) []Outcome {
	outcomes := make([]Outcome, 0, len(snapshot))
	for _, sub := range snapshot {
		outcomes = append(outcomes, p.attempt(ctx, sub, event))
	}

	return outcomes
}

// dispatchAsync submits one pool task per subscriber and returns a Future
// that resolves once every task has settled. Each task writes its own
// outcome slot, so a failing task never disturbs its siblings; tasks may
// start, run, and finish in any interleaving.
func (p *Publisher[T]) dispatchAsync(ctx context.Context, snapshot []Subscriber[T], event T) *Future {
	f := &Future{
		outcomes: make([]Outcome, len(snapshot)),
		done:     make(chan struct{}),
	}

	if len(snapshot) == 0 {
		close(f.done)
		return f
	}

	// Submission runs off the caller's goroutine so a saturated bounded
	// pool delays the tasks, not the publisher.
	go func() {
		var wg sync.WaitGroup
		for i, sub := range snapshot {
			i, sub := i, sub
			wg.Add(1)
			p.pool.Submit(func() {
				defer wg.Done()
				f.outcomes[i] = p.attempt(ctx, sub, event)
			})
		}

		wg.Wait()
		close(f.done)
	}()

	return f
}
