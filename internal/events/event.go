package events

import "github.com/andrewmaci/KebabManager/internal/order"

// Kind names a mutation observed by stream subscribers.
type Kind string

// Event kinds, as they appear on the wire in the SSE "event:" field.
const (
	KindNewOrder    Kind = "new_order"
	KindUpdateOrder Kind = "update_order"
	KindDeleteOrder Kind = "delete_order"
)

// Event is an immutable notification describing one committed mutation.
// The payload is the full order record for new/update, and a DeletedOrder
// for delete. Subscribers receive events by value.
type Event struct {
	Kind    Kind
	Payload interface{}
}

// DeletedOrder is the delete event payload. Date is omitted when the
// deleted record carried none.
type DeletedOrder struct {
	ID   string `json:"id"`
	Date string `json:"date,omitempty"`
}

// NewOrder builds the event for a created order.
func NewOrder(o order.Order) Event {
	return Event{Kind: KindNewOrder, Payload: o}
}

// UpdateOrder builds the event for a replaced order.
func UpdateOrder(o order.Order) Event {
	return Event{Kind: KindUpdateOrder, Payload: o}
}

// DeleteOrder builds the event for a removed order.
func DeleteOrder(o order.Order) Event {
	return Event{Kind: KindDeleteOrder, Payload: DeletedOrder{ID: o.ID, Date: o.Date}}
}
