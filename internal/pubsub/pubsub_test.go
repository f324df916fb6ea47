package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishDeliversToAllSubscribers(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub1 := b.Subscribe(ctx)
	sub2 := b.Subscribe(ctx)
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish(ActivatedEvent, "inventory")

	for _, sub := range []<-chan Event[string]{sub1, sub2} {
		select {
		case ev := <-sub:
			assert.Equal(t, ActivatedEvent, ev.Type)
			assert.Equal(t, "inventory", ev.Payload)
			assert.False(t, ev.Timestamp.IsZero())
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestBroker_ContextCancelRemovesSubscriber(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	// Channel close is asynchronous; wait for it.
	select {
	case _, ok := <-sub:
		assert.False(t, ok, "expected channel to be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	require.Eventually(t, func() bool {
		return b.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestBroker_PublishDoesNotBlockOnFullBuffer(t *testing.T) {
	b := NewBrokerWithBuffer[int](1)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := b.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		// Second publish overflows the buffer and must be dropped.
		b.Publish(CreatedEvent, 1)
		b.Publish(CreatedEvent, 2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on full subscriber buffer")
	}

	ev := <-sub
	assert.Equal(t, 1, ev.Payload)
}

func TestBroker_SubscribeAfterClose(t *testing.T) {
	b := NewBroker[string]()
	b.Close()

	sub := b.Subscribe(context.Background())
	_, ok := <-sub
	assert.False(t, ok, "subscription on closed broker should be closed")

	// Publishing and re-closing after Close are no-ops.
	b.Publish(CreatedEvent, "ignored")
	b.Close()
}
