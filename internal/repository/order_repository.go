package repository

import (
	"context"
	"database/sql"

	"github.com/BradleyLewis08/uniform-store/internal/model"
)

// OrderRepo provides access to the 'orders' table. Orders are append-only
// apart from their status column.
type OrderRepo struct{ db *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderColumns = "order_id, item_id, quantity, order_date, customer_id, final_price_cents, order_status"

// Create inserts an order and returns its ID. New orders always start in
// the Incomplete state; the caller supplies the already-computed final
// price and the order date.
func (r *OrderRepo) Create(ctx context.Context, o model.Order) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO orders (item_id, quantity, order_date, customer_id, final_price_cents, order_status) VALUES (?,?,?,?,?,?)",
		o.ItemID, o.Quantity, o.OrderDate, o.CustomerID, o.FinalPriceCents, model.StatusIncomplete)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single order. Returns ErrOrderNotFound when the ID is
// unknown rather than leaving the caller to index an empty result.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (model.Order, error) {
	var o model.Order
	err := r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE order_id=? LIMIT 1",
		id).Scan(&o.ID, &o.ItemID, &o.Quantity, &o.OrderDate, &o.CustomerID, &o.FinalPriceCents, &o.Status)
	if err == sql.ErrNoRows {
		return model.Order{}, ErrOrderNotFound
	}
	return o, err
}

// ListByCustomer returns the orders placed by one customer, oldest first.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Order, error) {
	return r.list(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE customer_id=? ORDER BY order_id", customerID)
}

// ListAll returns every order in the ledger, oldest first. Admin only;
// the role check lives in middleware.
func (r *OrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY order_id")
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0, 16)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.ItemID, &o.Quantity, &o.OrderDate, &o.CustomerID, &o.FinalPriceCents, &o.Status); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateStatus advances an order from one status to another as a single
// conditional update guarded on the expected current status. When the
// order exists but its status no longer matches, the transition is stale
// or illegal and ErrInvalidTransition is returned; nothing is overwritten
// unconditionally.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint64, from, to model.OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET order_status=? WHERE order_id=? AND order_status=?",
		to, id, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}
	return nil
}
