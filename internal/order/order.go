package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Data carries the mutable fields of an order, as submitted by clients.
// The date is optional; an empty string means the order has no date.
type Data struct {
	CustomerName string `json:"customerName"`
	KebabType    string `json:"kebabType"`
	Size         string `json:"size"`
	Sauce        string `json:"sauce"`
	MeatType     string `json:"meatType"`
	Date         string `json:"date,omitempty"`
}

// Validate reports the first missing required field. Date is optional.
func (d Data) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"customerName", d.CustomerName},
		{"kebabType", d.KebabType},
		{"size", d.Size},
		{"sauce", d.Sauce},
		{"meatType", d.MeatType},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("order: missing field %s", f.name)
		}
	}
	return nil
}

// Order is a customer's kebab order. The ID is server-generated at creation
// and never changes; every other field is replaced wholesale on update.
type Order struct {
	ID string `json:"id"`
	Data
}

// New builds an Order from validated input with a freshly generated id.
func New(data Data) Order {
	return Order{ID: uuid.NewString(), Data: data}
}

// Store is the persistence contract for orders. Implementations serialize
// conflicting writes to the same id; no partial-write state is observable.
type Store interface {
	// Create persists a new order under its id.
	Create(ctx context.Context, o Order) error
	// Get returns the order with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Order, error)
	// List returns all orders, or only those whose date equals the filter
	// when date is non-empty. Order of results is unspecified.
	List(ctx context.Context, date string) ([]Order, error)
	// Replace overwrites the order with the given id, or returns
	// ErrNotFound without writing.
	Replace(ctx context.Context, o Order) error
	// Delete removes the order and returns the removed record, or
	// ErrNotFound.
	Delete(ctx context.Context, id string) (Order, error)
	// Close releases backend resources.
	Close() error
}
