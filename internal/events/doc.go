// Package events implements the live-update fan-out for order mutations:
// the event model, the process-wide subscriber registry, and the
// broadcaster that enqueues each event onto every subscriber's own queue.
//
// Delivery is at-most-once and best-effort. Per subscriber, events arrive
// in broadcast order (the queue is FIFO); a subscriber whose queue is full
// loses events rather than slowing mutations down. Clients needing full
// history re-fetch the order list.
package events
