// Package service contains the order workflow: the piece of the
// application with actual rules. It sits between the HTTP handlers and
// the repositories and owns the stock decrement and the status state
// machine, so the handlers stay thin.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BradleyLewis08/uniform-store/internal/model"
	"github.com/BradleyLewis08/uniform-store/internal/queue"
	"github.com/BradleyLewis08/uniform-store/internal/repository"
	"github.com/BradleyLewis08/uniform-store/internal/session"
)

// ErrUnknownSize is returned when an order names a size the selected item
// is not stocked in.
var ErrUnknownSize = errors.New("size not available for item")

// CatalogStore is the slice of the catalog repository the workflow needs.
type CatalogStore interface {
	GetByCompositeID(ctx context.Context, itemID string) (model.CatalogItem, error)
	AdjustStock(ctx context.Context, itemID string, delta int64) error
	ComputePrice(ctx context.Context, itemID string, quantity uint32) (uint32, error)
}

// OrderStore is the slice of the order repository the workflow needs.
type OrderStore interface {
	Create(ctx context.Context, o model.Order) (uint64, error)
	GetByID(ctx context.Context, id uint64) (model.Order, error)
	UpdateStatus(ctx context.Context, id uint64, from, to model.OrderStatus) error
}

// EventPublisher pushes order events to the broker. Implementations are
// best-effort; the workflow ignores publish failures.
type EventPublisher interface {
	OrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error
	OrderStatusChanged(ctx context.Context, ev queue.OrderStatusChangedEvent) error
}

// Actor identifies who is driving a workflow step.
type Actor struct {
	ID   uint64
	Role string
}

// OrderFlow orchestrates placing orders against stock and advancing them
// through the Incomplete -> Pending -> Complete lifecycle.
type OrderFlow struct {
	catalog CatalogStore
	orders  OrderStore
	events  EventPublisher
}

func NewOrderFlow(catalog CatalogStore, orders OrderStore, events EventPublisher) *OrderFlow {
	if catalog == nil || orders == nil {
		panic("nil store passed to NewOrderFlow")
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &OrderFlow{catalog: catalog, orders: orders, events: events}
}

// Place turns the customer's in-progress selection plus a size and
// quantity into an order. The stock decrement is a single conditional
// update, so two concurrent orders racing for the last units cannot both
// succeed; the loser gets ErrInsufficientStock. The order row is inserted
// only after the decrement, and the decrement is compensated if the
// insert fails.
func (f *OrderFlow) Place(ctx context.Context, actor Actor, sel session.Selection, size string, quantity uint32) (model.Order, error) {
	if quantity == 0 {
		return model.Order{}, repository.ErrInsufficientStock
	}
	size = strings.ToUpper(strings.TrimSpace(size))
	if !hasSize(sel.Sizes, size) {
		return model.Order{}, ErrUnknownSize
	}
	itemID := model.CompositeID(sel.BaseID, size)

	price, err := f.catalog.ComputePrice(ctx, itemID, quantity)
	if err != nil {
		return model.Order{}, err
	}
	if err := f.catalog.AdjustStock(ctx, itemID, -int64(quantity)); err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		ItemID:          itemID,
		Quantity:        quantity,
		OrderDate:       time.Now().UTC().Truncate(24 * time.Hour),
		CustomerID:      actor.ID,
		FinalPriceCents: price,
		Status:          model.StatusIncomplete,
	}
	id, err := f.orders.Create(ctx, order)
	if err != nil {
		// Give the reserved units back; the order was never recorded.
		_ = f.catalog.AdjustStock(ctx, itemID, int64(quantity))
		return model.Order{}, err
	}
	order.ID = id

	_ = f.events.OrderPlaced(ctx, queue.OrderPlacedEvent{
		OrderID:         id,
		ItemID:          itemID,
		ItemName:        sel.Name,
		Quantity:        quantity,
		CustomerID:      actor.ID,
		FinalPriceCents: price,
		PlacedAt:        time.Now().UTC().Format(time.RFC3339),
	})
	return order, nil
}

// Complete advances an order one step, depending on who is asking: an
// admin marks an Incomplete order Pending (ready for pickup), and the
// owning customer marks a Pending order Complete (received). The current
// status is validated before the transition regardless of role, so an
// admin cannot re-mark a Pending order and a customer cannot complete an
// order the admin has not prepared yet. The database update is guarded on
// the same expected status, which also closes the race between two
// concurrent calls.
func (f *OrderFlow) Complete(ctx context.Context, actor Actor, orderID uint64) (model.Order, error) {
	order, err := f.orders.GetByID(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	var target model.OrderStatus
	switch actor.Role {
	case model.RoleAdmin:
		target = model.StatusPending
	case model.RoleCustomer:
		if order.CustomerID != actor.ID {
			return model.Order{}, repository.ErrForbidden
		}
		target = model.StatusComplete
	default:
		return model.Order{}, repository.ErrForbidden
	}

	if !order.Status.CanTransition(target) {
		return model.Order{}, repository.ErrInvalidTransition
	}
	if err := f.orders.UpdateStatus(ctx, orderID, order.Status, target); err != nil {
		return model.Order{}, err
	}

	_ = f.events.OrderStatusChanged(ctx, queue.OrderStatusChangedEvent{
		OrderID:    orderID,
		CustomerID: order.CustomerID,
		From:       string(order.Status),
		To:         string(target),
		ChangedBy:  actor.ID,
		ChangedAt:  time.Now().UTC().Format(time.RFC3339),
	})
	order.Status = target
	return order, nil
}

func hasSize(sizes []string, size string) bool {
	for _, s := range sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// BrokerPublisher sends events through the RabbitMQ publisher.
type BrokerPublisher struct{}

func (BrokerPublisher) OrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error {
	return queue.PublishOrderPlaced(ctx, ev)
}

func (BrokerPublisher) OrderStatusChanged(ctx context.Context, ev queue.OrderStatusChangedEvent) error {
	return queue.PublishOrderStatusChanged(ctx, ev)
}

// NopPublisher drops events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) OrderPlaced(context.Context, queue.OrderPlacedEvent) error { return nil }
func (NopPublisher) OrderStatusChanged(context.Context, queue.OrderStatusChangedEvent) error {
	return nil
}
