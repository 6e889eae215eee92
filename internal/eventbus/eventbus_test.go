package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var calls atomic.Int32
	b.Subscribe(EventQuerySubmitted, func(DomainEvent) { calls.Add(1) })

	b.Publish(QuerySubmittedEvent{Text: "canada"})
	require.Eventually(t, func() bool { return calls.Load() == 1 },
		time.Second, time.Millisecond)
}

func TestUnsubscribeRemovesOnlyOwnHandler(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var first, second atomic.Int32
	unsubFirst := b.Subscribe(EventQuerySubmitted, func(DomainEvent) { first.Add(1) })
	b.Subscribe(EventQuerySubmitted, func(DomainEvent) { second.Add(1) })

	unsubFirst()

	b.Publish(QuerySubmittedEvent{Text: "germany"})
	require.Eventually(t, func() bool { return second.Load() == 1 },
		time.Second, time.Millisecond)
	require.Zero(t, first.Load(), "removed handler should not fire")
}

func TestUnsubscribeAfterEarlierRemoval(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var first, second, barrier atomic.Int32
	unsubFirst := b.Subscribe(EventQuerySubmitted, func(DomainEvent) { first.Add(1) })
	unsubSecond := b.Subscribe(EventQuerySubmitted, func(DomainEvent) { second.Add(1) })

	// Removing the first must not shift which handler the second token
	// points at.
	unsubFirst()
	unsubSecond()
	b.Subscribe(EventQuerySubmitted, func(DomainEvent) { barrier.Add(1) })

	b.Publish(QuerySubmittedEvent{Text: "france"})
	require.Eventually(t, func() bool { return barrier.Load() == 1 },
		time.Second, time.Millisecond)
	require.Zero(t, first.Load())
	require.Zero(t, second.Load())
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var first, second atomic.Int32
	unsubFirst := b.Subscribe(EventQuerySubmitted, func(DomainEvent) { first.Add(1) })
	b.Subscribe(EventQuerySubmitted, func(DomainEvent) { second.Add(1) })

	unsubFirst()
	unsubFirst()

	b.Publish(QuerySubmittedEvent{Text: "spain"})
	require.Eventually(t, func() bool { return second.Load() == 1 },
		time.Second, time.Millisecond)
	require.Zero(t, first.Load())
}

func TestCloseStopsDelivery(t *testing.T) {
	t.Parallel()
	b := New()

	var calls atomic.Int32
	b.Subscribe(EventQuerySubmitted, func(DomainEvent) { calls.Add(1) })

	b.Close()
	require.NotPanics(t, func() {
		b.Publish(QuerySubmittedEvent{Text: "late"})
	})

	time.Sleep(20 * time.Millisecond)
	require.Zero(t, calls.Load(), "no handler runs after Close")
}
