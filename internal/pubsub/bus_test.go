package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"
)

func recvOne(t *testing.T, ch <-chan int) int {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for payload")
		return 0
	}
}

func assertEmpty(t *testing.T, ch <-chan int) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			t.Errorf("expected no payload, got %d", v)
		}
	default:
	}
}

// ---- Delivery -----------------------------------------------------------

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := New[int]()
	ctx := context.Background()

	a, cancelA := bus.Subscribe(ctx, "orders", nil)
	defer cancelA()
	b, cancelB := bus.Subscribe(ctx, "orders", nil)
	defer cancelB()

	bus.Publish("orders", 7)

	if got := recvOne(t, a); got != 7 {
		t.Errorf("subscriber a: expected 7, got %d", got)
	}
	if got := recvOne(t, b); got != 7 {
		t.Errorf("subscriber b: expected 7, got %d", got)
	}
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	bus := New[int]()

	pending, cancel := bus.Subscribe(context.Background(), "pending", nil)
	defer cancel()

	bus.Publish("cooked", 1)
	assertEmpty(t, pending)
}

func TestBus_PreservesPublishOrder(t *testing.T) {
	bus := New[int]()

	ch, cancel := bus.Subscribe(context.Background(), "orders", nil)
	defer cancel()

	for i := 1; i <= 5; i++ {
		bus.Publish("orders", i)
	}
	for i := 1; i <= 5; i++ {
		if got := recvOne(t, ch); got != i {
			t.Fatalf("expected %d in position %d, got %d", i, i, got)
		}
	}
}

func TestBus_ConcurrentPublishersAgreeOnOrder(t *testing.T) {
	// Two goroutines racing to publish on one topic: every subscriber
	// must observe the two payloads in the same relative order.
	for iter := 0; iter < 200; iter++ {
		bus := New[int]()
		ctx := context.Background()

		const subscribers = 16
		chans := make([]<-chan int, subscribers)
		for i := range chans {
			ch, cancel := bus.Subscribe(ctx, "orders", nil)
			defer cancel()
			chans[i] = ch
		}

		var wg sync.WaitGroup
		for _, v := range []int{1, 2} {
			wg.Add(1)
			go func(v int) {
				defer wg.Done()
				bus.Publish("orders", v)
			}(v)
		}
		wg.Wait()

		first := recvOne(t, chans[0])
		for i := 1; i < subscribers; i++ {
			if got := recvOne(t, chans[i]); got != first {
				t.Fatalf("iteration %d: subscriber 0 saw %d first, subscriber %d saw %d", iter, first, i, got)
			}
		}
	}
}

// ---- Filters ------------------------------------------------------------

func TestBus_FilterIsPerSubscriber(t *testing.T) {
	bus := New[int]()
	ctx := context.Background()

	evens, cancelE := bus.Subscribe(ctx, "orders", func(v int) bool { return v%2 == 0 })
	defer cancelE()
	all, cancelA := bus.Subscribe(ctx, "orders", nil)
	defer cancelA()

	for i := 1; i <= 4; i++ {
		bus.Publish("orders", i)
	}

	if got := recvOne(t, evens); got != 2 {
		t.Errorf("filtered subscriber: expected 2 first, got %d", got)
	}
	if got := recvOne(t, evens); got != 4 {
		t.Errorf("filtered subscriber: expected 4 second, got %d", got)
	}
	for i := 1; i <= 4; i++ {
		if got := recvOne(t, all); got != i {
			t.Errorf("unfiltered subscriber: expected %d, got %d", i, got)
		}
	}
}

// ---- Unsubscribe --------------------------------------------------------

func TestBus_CleanupStopsDelivery(t *testing.T) {
	bus := New[int]()

	ch, cancel := bus.Subscribe(context.Background(), "orders", nil)
	cancel()

	bus.Publish("orders", 7)

	if _, ok := <-ch; ok {
		t.Error("expected channel closed after cleanup")
	}
	if n := bus.SubscriberCount("orders"); n != 0 {
		t.Errorf("expected 0 subscribers after cleanup, got %d", n)
	}
}

func TestBus_CleanupIsIdempotent(t *testing.T) {
	bus := New[int]()

	_, cancel := bus.Subscribe(context.Background(), "orders", nil)
	cancel()
	cancel() // second call must not panic or double-close
}

func TestBus_CleanupRacingPublish(t *testing.T) {
	// Unsubscribe racing a publish must never panic (no send on the
	// closed channel), and once cancel has returned no further payload
	// lands on the channel.
	for iter := 0; iter < 200; iter++ {
		bus := New[int]()

		ch, cancel := bus.Subscribe(context.Background(), "orders", nil)

		done := make(chan struct{})
		go func() {
			defer close(done)
			bus.Publish("orders", iter)
		}()
		cancel()
		<-done

		// Drain whatever arrived before the cancel; the channel must
		// end closed with no payload published after removal.
		for v := range ch {
			if v != iter {
				t.Fatalf("iteration %d: unexpected payload %d", iter, v)
			}
		}
	}
}

func TestBus_ContextCancelUnsubscribes(t *testing.T) {
	bus := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	ch, _ := bus.Subscribe(ctx, "orders", nil)
	cancel()

	// The cleanup goroutine runs asynchronously; wait for the close.
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel, got payload")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after context cancel")
	}
	if n := bus.SubscriberCount("orders"); n != 0 {
		t.Errorf("expected 0 subscribers, got %d", n)
	}
}

// ---- Backpressure -------------------------------------------------------

func TestBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := New[int]()

	slow, cancel := bus.Subscribe(context.Background(), "orders", nil)
	defer cancel()

	// Overflow the subscriber's buffer without draining it. Excess
	// payloads are dropped; Publish must return regardless.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer+10; i++ {
			bus.Publish("orders", i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffered prefix is still delivered in order.
	if got := recvOne(t, slow); got != 0 {
		t.Errorf("expected buffered payload 0, got %d", got)
	}
}

func TestBus_SubscriberCount(t *testing.T) {
	bus := New[int]()
	ctx := context.Background()

	if n := bus.SubscriberCount("orders"); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
	_, cancelA := bus.Subscribe(ctx, "orders", nil)
	_, cancelB := bus.Subscribe(ctx, "orders", nil)
	if n := bus.SubscriberCount("orders"); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
	cancelA()
	cancelB()
	if n := bus.SubscriberCount("orders"); n != 0 {
		t.Errorf("expected 0 after cleanup, got %d", n)
	}
}
