package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/BradleyLewis08/uniform-store/internal/model"
)

func TestOrderRepo_Create_AlwaysStartsIncomplete(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewOrderRepo(db)

	mk.ExpectExec("INSERT INTO orders").
		WithArgs("300040-L", uint32(3), sqlmock.AnyArg(), uint64(7), uint32(15000), model.StatusIncomplete).
		WillReturnResult(sqlmock.NewResult(42, 1))

	// The caller-supplied status is ignored; new orders open Incomplete.
	id, err := repo.Create(context.Background(), model.Order{
		ItemID:          "300040-L",
		Quantity:        3,
		OrderDate:       time.Now().UTC(),
		CustomerID:      7,
		FinalPriceCents: 15000,
		Status:          model.StatusComplete,
	})

	require.NoError(t, err)
	require.Equal(t, uint64(42), id)
	require.NoError(t, mk.ExpectationsWereMet())
}

func storedOrderRows(status model.OrderStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"order_id", "item_id", "quantity", "order_date", "customer_id", "final_price_cents", "order_status",
	}).AddRow(42, "300040-L", 3, time.Now().UTC(), 7, 15000, string(status))
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewOrderRepo(db)

	mk.ExpectExec("UPDATE orders SET order_status").
		WithArgs(model.StatusPending, uint64(42), model.StatusIncomplete).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 42, model.StatusIncomplete, model.StatusPending)

	require.NoError(t, err)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestOrderRepo_UpdateStatus_StaleGuard(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewOrderRepo(db)

	// The guard matches nothing because the order already moved on.
	mk.ExpectExec("UPDATE orders SET order_status").
		WithArgs(model.StatusPending, uint64(42), model.StatusIncomplete).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mk.ExpectQuery("SELECT order_id, item_id, quantity, order_date, customer_id, final_price_cents, order_status FROM orders").
		WithArgs(uint64(42)).
		WillReturnRows(storedOrderRows(model.StatusPending))

	err := repo.UpdateStatus(context.Background(), 42, model.StatusIncomplete, model.StatusPending)

	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderRepo_UpdateStatus_OrderNotFound(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewOrderRepo(db)

	mk.ExpectExec("UPDATE orders SET order_status").
		WithArgs(model.StatusPending, uint64(99), model.StatusIncomplete).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mk.ExpectQuery("SELECT order_id, item_id, quantity, order_date, customer_id, final_price_cents, order_status FROM orders").
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"order_id", "item_id", "quantity", "order_date", "customer_id", "final_price_cents", "order_status",
		}))

	err := repo.UpdateStatus(context.Background(), 99, model.StatusIncomplete, model.StatusPending)

	require.ErrorIs(t, err, ErrOrderNotFound)
}
