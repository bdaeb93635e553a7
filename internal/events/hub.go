package events

import (
	"sync"

	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

// MetricsHook observes hub activity. Optional.
type MetricsHook interface {
	SubscriberAdded()
	SubscriberRemoved()
	EventBroadcast(kind string)
	EventDropped(kind string)
}

// NoopMetrics is used when no metrics hook is provided.
type NoopMetrics struct{}

func (NoopMetrics) SubscriberAdded()      {}
func (NoopMetrics) SubscriberRemoved()    {}
func (NoopMetrics) EventBroadcast(string) {}
func (NoopMetrics) EventDropped(string)   {}

// Subscriber is one registered stream connection. It owns a buffered event
// queue that the hub enqueues into and the connection's session loop drains.
type Subscriber struct {
	ch chan Event
}

// Events exposes the subscriber's queue. The channel is closed when the
// subscriber is unregistered or the hub shuts down; a ranging session loop
// terminates on its own.
func (s *Subscriber) Events() <-chan Event { return s.ch }

// Hub is the process-wide subscriber registry and event broadcaster.
//
// All registry access happens under one mutex, so a broadcast observes a
// consistent snapshot: never a subscriber mid-registration, never a queue
// that has already been closed by an unregister. Holding the mutex across
// the full enqueue pass also makes broadcast order equal to call order,
// and enqueues are non-blocking, so one stalled subscriber cannot delay
// delivery to the others or the mutating request itself.
type Hub struct {
	mu      sync.Mutex
	subs    map[*Subscriber]struct{}
	buffer  int
	closed  bool
	logger  *logpkg.Logger
	metrics MetricsHook
}

// NewHub creates a hub whose subscribers buffer up to buffer events each.
func NewHub(buffer int, logger *logpkg.Logger, metrics MetricsHook) *Hub {
	if buffer <= 0 {
		buffer = 64
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Hub{
		subs:    make(map[*Subscriber]struct{}),
		buffer:  buffer,
		logger:  logger.With(logpkg.Component("events")),
		metrics: metrics,
	}
}

// Subscribe registers a new subscriber and returns its handle. After hub
// shutdown the returned subscriber's queue is already closed.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{ch: make(chan Event, h.buffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(s.ch)
		return s
	}
	h.subs[s] = struct{}{}
	h.metrics.SubscriberAdded()
	h.logger.Debug("subscriber registered", logpkg.Int("subscribers", len(h.subs)))
	return s
}

// Unsubscribe removes a subscriber and closes its queue. Idempotent: a
// second call for the same handle is a no-op.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; !ok {
		return
	}
	delete(h.subs, s)
	close(s.ch)
	h.metrics.SubscriberRemoved()
	h.logger.Debug("subscriber removed", logpkg.Int("subscribers", len(h.subs)))
}

// Broadcast enqueues ev onto every registered subscriber's queue. A full
// queue drops the event for that subscriber only; delivery to the rest is
// unaffected. Broadcast returns once every enqueue has been attempted; it
// never waits for consumption.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.metrics.EventBroadcast(string(ev.Kind))
	for s := range h.subs {
		select {
		case s.ch <- ev:
		default:
			h.metrics.EventDropped(string(ev.Kind))
			h.logger.Warn("subscriber queue full, event dropped", logpkg.Str("kind", string(ev.Kind)))
		}
	}
}

// SubscriberCount returns the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close unregisters every subscriber and closes their queues so session
// loops drain and exit. Further Subscribe calls return closed subscribers
// and further broadcasts are dropped.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for s := range h.subs {
		delete(h.subs, s)
		close(s.ch)
		h.metrics.SubscriberRemoved()
	}
	h.logger.Info("hub closed")
}
