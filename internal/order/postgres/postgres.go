// Package postgres implements an order store backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"

	"github.com/andrewmaci/KebabManager/internal/order"
)

// Store persists orders in a single table. Conflicting writes to the same
// id are serialized by row-level locking in the database.
type Store struct {
	db *sql.DB
}

// Open connects to PostgreSQL and ensures the orders table exists.
func Open(databaseURL string) (*Store, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	const schema = `CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		kebab_type TEXT NOT NULL,
		size TEXT NOT NULL,
		sauce TEXT NOT NULL,
		meat_type TEXT NOT NULL,
		date TEXT NOT NULL DEFAULT ''
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// New wraps an existing connection pool; the caller owns the schema.
func New(db *sql.DB) *Store { return &Store{db: db} }

// Create inserts a new order.
func (s *Store) Create(ctx context.Context, o order.Order) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO orders (id, customer_name, kebab_type, size, sauce, meat_type, date) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		o.ID, o.CustomerName, o.KebabType, o.Size, o.Sauce, o.MeatType, o.Date)
	return err
}

// Get retrieves an order by id.
func (s *Store) Get(ctx context.Context, id string) (order.Order, error) {
	var o order.Order
	err := s.db.QueryRowContext(ctx,
		"SELECT id, customer_name, kebab_type, size, sauce, meat_type, date FROM orders WHERE id=$1", id).
		Scan(&o.ID, &o.CustomerName, &o.KebabType, &o.Size, &o.Sauce, &o.MeatType, &o.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	return o, err
}

// List fetches all orders, filtered by exact date match when date is
// non-empty.
func (s *Store) List(ctx context.Context, date string) ([]order.Order, error) {
	query := "SELECT id, customer_name, kebab_type, size, sauce, meat_type, date FROM orders"
	args := []any{}
	if date != "" {
		query += " WHERE date=$1"
		args = append(args, date)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []order.Order{}
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.KebabType, &o.Size, &o.Sauce, &o.MeatType, &o.Date); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Replace overwrites an existing order.
func (s *Store) Replace(ctx context.Context, o order.Order) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE orders SET customer_name=$2, kebab_type=$3, size=$4, sauce=$5, meat_type=$6, date=$7 WHERE id=$1",
		o.ID, o.CustomerName, o.KebabType, o.Size, o.Sauce, o.MeatType, o.Date)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return order.ErrNotFound
	}
	return nil
}

// Delete removes an order and returns the removed record.
func (s *Store) Delete(ctx context.Context, id string) (order.Order, error) {
	var o order.Order
	err := s.db.QueryRowContext(ctx,
		"DELETE FROM orders WHERE id=$1 RETURNING id, customer_name, kebab_type, size, sauce, meat_type, date", id).
		Scan(&o.ID, &o.CustomerName, &o.KebabType, &o.Size, &o.Sauce, &o.MeatType, &o.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	return o, err
}

// CheckHealth pings the database.
func (s *Store) CheckHealth() error { return s.db.Ping() }

// Close closes the connection pool.
func (s *Store) Close() error { return s.db.Close() }
