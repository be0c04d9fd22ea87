package model

import "time"

// OrderStatus is the fulfillment state of an order. The lifecycle is a
// straight line: Incomplete (just placed) -> Pending (admin has prepared
// the order) -> Complete (customer acknowledged receipt). There is no
// transition back and no cancellation.
type OrderStatus string

const (
	StatusIncomplete OrderStatus = "Incomplete"
	StatusPending    OrderStatus = "Pending"
	StatusComplete   OrderStatus = "Complete"
)

// Valid reports whether s is one of the three known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusIncomplete, StatusPending, StatusComplete:
		return true
	}
	return false
}

// Next returns the status that follows s in the lifecycle. ok is false
// for Complete (terminal) and for unknown values.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusIncomplete:
		return StatusPending, true
	case StatusPending:
		return StatusComplete, true
	}
	return "", false
}

// CanTransition reports whether moving from s to target is a legal step.
// Only the two forward single-step transitions are allowed; re-applying
// the current status, skipping a step and moving backwards are all
// rejected regardless of who asks.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

// Order records a customer purchase of one stock-keeping unit in the
// `orders` table. Orders are never deleted; only their status advances.
//
// Fields:
//
//	ID              – primary key identifier.
//	ItemID          – composite catalog key (base "-" size).
//	Quantity        – number of units ordered.
//	OrderDate       – calendar date the order was placed.
//	CustomerID      – user who placed the order.
//	FinalPriceCents – unit price * quantity at order time.
//	Status          – current lifecycle state.
type Order struct {
	ID              uint64      // orders.order_id
	ItemID          string      // orders.item_id
	Quantity        uint32      // orders.quantity
	OrderDate       time.Time   // orders.order_date
	CustomerID      uint64      // orders.customer_id
	FinalPriceCents uint32      // orders.final_price_cents
	Status          OrderStatus // orders.order_status
}
