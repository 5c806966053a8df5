// Package pubsub provides in-memory pub/sub for real-time GraphQL
// subscriptions.
package pubsub

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"eats-backend/internal/metrics"
)

// subscriberBuffer bounds each subscriber channel so a slow consumer
// never blocks a publisher.
const subscriberBuffer = 100

// FilterFunc decides whether a published payload is relevant to one
// subscriber. It is captured at subscribe time, typically as a closure
// over the subscriber's principal and subscription arguments. A nil
// filter accepts everything.
type FilterFunc[T any] func(payload T) bool

type subscription[T any] struct {
	ch     chan T
	filter FilterFunc[T]
}

// Bus is a thread-safe multi-topic broadcaster. Every subscription on a
// topic receives every payload published after it subscribed, filtered
// by its own predicate, and all subscriptions on a topic observe
// publishes in the same relative order. There is no replay and no
// cross-topic ordering.
type Bus[T any] struct {
	mu     sync.RWMutex
	topics map[string]map[string]*subscription[T]
}

func New[T any]() *Bus[T] {
	return &Bus[T]{topics: make(map[string]map[string]*subscription[T])}
}

// Subscribe registers a new subscription on topic. The returned channel
// receives payloads passing filter until the subscription is removed.
// Call the returned cleanup function to unsubscribe; it is idempotent,
// and it also runs automatically when ctx is cancelled.
func (b *Bus[T]) Subscribe(ctx context.Context, topic string, filter FilterFunc[T]) (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	sub := &subscription[T]{
		ch:     make(chan T, subscriberBuffer),
		filter: filter,
	}

	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[string]*subscription[T])
		b.topics[topic] = subs
	}
	subs[id] = sub
	metrics.ActiveSubscriptions.WithLabelValues(topic).Inc()

	log.Debug().Str("topic", topic).Str("subscriberID", id).Msg("new subscription")

	cleanup := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if existing, ok := b.topics[topic][id]; ok {
			close(existing.ch)
			delete(b.topics[topic], id)
			metrics.ActiveSubscriptions.WithLabelValues(topic).Dec()
			log.Debug().Str("topic", topic).Str("subscriberID", id).Msg("subscription removed")
		}
	}

	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return sub.ch, cleanup
}

// Publish broadcasts payload to every subscription on topic whose filter
// accepts it. Publish never blocks: a subscriber whose buffer is full
// misses the payload, which is logged and counted but does not stall
// anyone else. Fan-out holds the write lock so concurrent publishes on
// a topic are serialized and every subscriber sees them in the same
// relative order.
func (b *Bus[T]) Publish(topic string, payload T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	metrics.EventsPublishedTotal.WithLabelValues(topic).Inc()

	for id, sub := range b.topics[topic] {
		if sub.filter != nil && !sub.filter(payload) {
			continue
		}
		select {
		case sub.ch <- payload:
		default:
			metrics.EventsDroppedTotal.WithLabelValues(topic).Inc()
			log.Warn().
				Str("topic", topic).
				Str("subscriberID", id).
				Msg("subscription buffer full, dropping event")
		}
	}
}

// SubscriberCount returns the number of live subscriptions on topic.
func (b *Bus[T]) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}
