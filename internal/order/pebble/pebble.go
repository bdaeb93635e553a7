// Package pebble implements an order store persisted in a local Pebble
// database, one JSON document per order.
package pebble

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/andrewmaci/KebabManager/internal/order"
	pebblestore "github.com/andrewmaci/KebabManager/internal/storage/pebble"
)

const keyPrefix = "order/"

// Store persists orders as JSON values under "order/<id>". A store-level
// mutex serializes mutations so an exists-check and its following write are
// atomic with respect to other writers.
type Store struct {
	mu sync.Mutex
	db *pebblestore.DB
}

// Open creates or opens the order database in dataDir.
func Open(dataDir string) (*Store, error) {
	db, err := pebblestore.Open(pebblestore.Options{DataDir: dataDir, Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func key(id string) []byte { return []byte(keyPrefix + id) }

// Create persists a new order under its id.
func (s *Store) Create(ctx context.Context, o order.Order) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Set(key(o.ID), b)
}

// Get returns the order with the given id.
func (s *Store) Get(ctx context.Context, id string) (order.Order, error) {
	b, err := s.db.Get(key(id))
	if err != nil {
		if errors.Is(err, pebblestore.ErrKeyNotFound) {
			return order.Order{}, order.ErrNotFound
		}
		return order.Order{}, err
	}
	var o order.Order
	if err := json.Unmarshal(b, &o); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

// List scans all order documents, filtered by exact date match when date is
// non-empty.
func (s *Store) List(ctx context.Context, date string) ([]order.Order, error) {
	out := []order.Order{}
	err := s.db.Scan([]byte(keyPrefix), func(k, v []byte) error {
		var o order.Order
		if err := json.Unmarshal(v, &o); err != nil {
			return err
		}
		if date != "" && o.Date != date {
			return nil
		}
		out = append(out, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Replace overwrites an existing order, or returns ErrNotFound without
// writing.
func (s *Store) Replace(ctx context.Context, o order.Order) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Get(key(o.ID)); err != nil {
		if errors.Is(err, pebblestore.ErrKeyNotFound) {
			return order.ErrNotFound
		}
		return err
	}
	return s.db.Set(key(o.ID), b)
}

// Delete removes an order and returns the removed record.
func (s *Store) Delete(ctx context.Context, id string) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.db.Get(key(id))
	if err != nil {
		if errors.Is(err, pebblestore.ErrKeyNotFound) {
			return order.Order{}, order.ErrNotFound
		}
		return order.Order{}, err
	}
	var o order.Order
	if err := json.Unmarshal(b, &o); err != nil {
		return order.Order{}, err
	}
	if err := s.db.Delete(key(id)); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

// CheckHealth probes the underlying database.
func (s *Store) CheckHealth() error { return s.db.CheckHealth() }

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
