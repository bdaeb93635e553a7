package events

import (
	"io"
	"sync"
	"testing"

	"github.com/andrewmaci/KebabManager/internal/order"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

func testHub(buffer int) *Hub {
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.ErrorLevel), logpkg.WithOutput(io.Discard))
	return NewHub(buffer, logger, nil)
}

func testOrder() order.Order {
	return order.Order{ID: "o1", Data: order.Data{
		CustomerName: "Jan", KebabType: "Doner", Size: "L", Sauce: "garlic", MeatType: "chicken",
	}}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	h := testHub(8)
	a := h.Subscribe()
	b := h.Subscribe()
	if h.SubscriberCount() != 2 {
		t.Fatalf("count: %d", h.SubscriberCount())
	}

	h.Broadcast(NewOrder(testOrder()))

	for _, s := range []*Subscriber{a, b} {
		ev := <-s.Events()
		if ev.Kind != KindNewOrder {
			t.Fatalf("kind: %s", ev.Kind)
		}
		o, ok := ev.Payload.(order.Order)
		if !ok || o.ID != "o1" {
			t.Fatalf("payload: %+v", ev.Payload)
		}
	}
}

func TestPerSubscriberFIFO(t *testing.T) {
	h := testHub(8)
	s := h.Subscribe()
	o := testOrder()
	h.Broadcast(NewOrder(o))
	h.Broadcast(UpdateOrder(o))
	h.Broadcast(DeleteOrder(o))

	want := []Kind{KindNewOrder, KindUpdateOrder, KindDeleteOrder}
	for i, k := range want {
		ev := <-s.Events()
		if ev.Kind != k {
			t.Fatalf("event %d: got %s want %s", i, ev.Kind, k)
		}
	}
}

func TestUnsubscribeIdempotent(t *testing.T) {
	h := testHub(8)
	s := h.Subscribe()
	other := h.Subscribe()

	h.Unsubscribe(s)
	h.Unsubscribe(s) // second call must be a no-op
	if h.SubscriberCount() != 1 {
		t.Fatalf("count after double unsubscribe: %d", h.SubscriberCount())
	}
	if _, ok := <-s.Events(); ok {
		t.Fatal("queue should be closed after unsubscribe")
	}

	// The remaining subscriber still receives broadcasts.
	h.Broadcast(NewOrder(testOrder()))
	if ev := <-other.Events(); ev.Kind != KindNewOrder {
		t.Fatalf("remaining subscriber kind: %s", ev.Kind)
	}
}

func TestFullQueueDropsWithoutBlocking(t *testing.T) {
	h := testHub(1)
	slow := h.Subscribe()
	fast := h.Subscribe()
	o := testOrder()

	// Fill slow's queue, then broadcast again: slow drops, fast keeps up.
	h.Broadcast(NewOrder(o))
	<-fast.Events()
	h.Broadcast(UpdateOrder(o))

	if ev := <-fast.Events(); ev.Kind != KindUpdateOrder {
		t.Fatalf("fast subscriber kind: %s", ev.Kind)
	}
	if ev := <-slow.Events(); ev.Kind != KindNewOrder {
		t.Fatalf("slow subscriber first event: %s", ev.Kind)
	}
	select {
	case ev := <-slow.Events():
		t.Fatalf("dropped event delivered: %s", ev.Kind)
	default:
	}
}

func TestDeletePayloadOmitsEmptyDate(t *testing.T) {
	o := testOrder()
	ev := DeleteOrder(o)
	p, ok := ev.Payload.(DeletedOrder)
	if !ok {
		t.Fatalf("payload type: %T", ev.Payload)
	}
	if p.ID != o.ID || p.Date != "" {
		t.Fatalf("payload: %+v", p)
	}

	o.Date = "2024-01-01"
	p = DeleteOrder(o).Payload.(DeletedOrder)
	if p.Date != "2024-01-01" {
		t.Fatalf("date not carried: %+v", p)
	}
}

func TestCloseTerminatesSubscribers(t *testing.T) {
	h := testHub(8)
	s := h.Subscribe()
	h.Close()
	if _, ok := <-s.Events(); ok {
		t.Fatal("queue should be closed after hub close")
	}
	if h.SubscriberCount() != 0 {
		t.Fatalf("count after close: %d", h.SubscriberCount())
	}
	// Subscribing after close yields an already-closed queue.
	late := h.Subscribe()
	if _, ok := <-late.Events(); ok {
		t.Fatal("late subscriber queue should be closed")
	}
	// Broadcasting after close must not panic.
	h.Broadcast(NewOrder(testOrder()))
}

func TestConcurrentSubscribeBroadcastUnsubscribe(t *testing.T) {
	h := testHub(64)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := h.Subscribe()
			for range s.Events() {
				// drain until unsubscribed
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Broadcast(NewOrder(testOrder()))
		}()
	}
	h.Close()
	wg.Wait()
	if h.SubscriberCount() != 0 {
		t.Fatalf("leaked subscribers: %d", h.SubscriberCount())
	}
}
