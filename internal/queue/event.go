// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published when a customer order is accepted and
// stock has been decremented. It carries enough information for
// downstream consumers to log or notify without querying the primary
// database.
type OrderPlacedEvent struct {
	OrderID         uint64 `json:"order_id"`
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name"`
	Quantity        uint32 `json:"quantity"`
	CustomerID      uint64 `json:"customer_id"`
	FinalPriceCents uint32 `json:"final_price_cents"`
	PlacedAt        string `json:"placed_at"`
}

// OrderStatusChangedEvent is published when an order advances through the
// fulfillment lifecycle (Incomplete -> Pending -> Complete).
type OrderStatusChangedEvent struct {
	OrderID    uint64 `json:"order_id"`
	CustomerID uint64 `json:"customer_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	ChangedBy  uint64 `json:"changed_by"`
	ChangedAt  string `json:"changed_at"`
}
