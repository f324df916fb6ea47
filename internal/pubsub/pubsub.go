// Package pubsub provides a generic publish/subscribe event broker used to
// fan out composition lifecycle events and log entries to observers.
package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBufferSize = 64

// EventType labels the kind of event being published.
type EventType string

const (
	// CreatedEvent is a generic "new entry" event (log lines, snapshots).
	CreatedEvent EventType = "created"
	// InitializedEvent signals a composition was (re)initialized for a sector.
	InitializedEvent EventType = "initialized"
	// ActivatedEvent signals a cell joined the active composition.
	ActivatedEvent EventType = "activated"
	// DeactivatedEvent signals a cell left the active composition.
	DeactivatedEvent EventType = "deactivated"
	// ReloadedEvent signals an external resource (e.g. catalog file) changed.
	ReloadedEvent EventType = "reloaded"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

// Broker is a generic pub/sub event broker. Publishing never blocks: events
// are dropped for subscribers whose buffers are full.
type Broker[T any] struct {
	mu         sync.RWMutex
	subs       map[chan Event[T]]struct{}
	done       chan struct{}
	bufferSize int
}

// NewBroker creates a broker with the default buffer size.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBufferSize)
}

// NewBrokerWithBuffer creates a broker with a custom per-subscriber buffer.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:       make(map[chan Event[T]]struct{}),
		done:       make(chan struct{}),
		bufferSize: size,
	}
}

// Subscribe registers a new subscriber. The returned channel is closed when
// ctx is cancelled or the broker shuts down. Subscribing to a closed broker
// yields an already-closed channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], b.bufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()

		if b.closed() {
			return
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish delivers an event to every subscriber that has buffer space.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed() {
		return
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			// Subscriber is not keeping up; drop rather than block.
		}
	}
}

// Close shuts down the broker and closes all subscriber channels.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		return
	}
	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// closed reports broker shutdown. Callers must hold at least a read lock.
func (b *Broker[T]) closed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}
