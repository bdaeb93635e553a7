// Package memory implements an in-memory order store.
package memory

import (
	"context"
	"sync"

	"github.com/andrewmaci/KebabManager/internal/order"
)

// Store keeps orders in a map guarded by a RWMutex. Writes are fully
// serialized, so concurrent mutations to the same id cannot interleave.
type Store struct {
	mu     sync.RWMutex
	orders map[string]order.Order
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{orders: make(map[string]order.Order)}
}

// Create persists a new order under its id.
func (s *Store) Create(ctx context.Context, o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return nil
}

// Get returns the order with the given id.
func (s *Store) Get(ctx context.Context, id string) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return o, nil
}

// List returns all orders, filtered by exact date match when date is
// non-empty. Orders without a date never match a non-empty filter.
func (s *Store) List(ctx context.Context, date string) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if date != "" && o.Date != date {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// Replace overwrites an existing order.
func (s *Store) Replace(ctx context.Context, o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; !ok {
		return order.ErrNotFound
	}
	s.orders[o.ID] = o
	return nil
}

// Delete removes an order and returns the removed record.
func (s *Store) Delete(ctx context.Context, id string) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	delete(s.orders, id)
	return o, nil
}

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error { return nil }
