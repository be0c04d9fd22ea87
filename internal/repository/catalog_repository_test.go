package repository

import (
	"context"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestDedupeNames(t *testing.T) {
	in := []string{"Black Hoodie", "Black Hoodie", "PE Shirt", "Blazer", "PE Shirt"}
	require.Equal(t, []string{"Black Hoodie", "PE Shirt", "Blazer"}, dedupeNames(in))

	require.Empty(t, dedupeNames(nil))
	require.Equal(t, []string{"Tie"}, dedupeNames([]string{"Tie"}))
}

func TestFilterNames(t *testing.T) {
	names := []string{"Black Hoodie", "PE Shirt", "Blazer", "School Tie"}

	require.Equal(t, []string{"Black Hoodie", "Blazer"}, filterNames(names, "bla"))
	require.Equal(t, []string{"PE Shirt"}, filterNames(names, "hir"), "substring match, not prefix")
	require.Equal(t, names, filterNames(names, ""))
	require.Equal(t, names, filterNames(names, "  "))
	require.Empty(t, filterNames(names, "trousers"))

	// Matching ignores case on both sides.
	require.Equal(t, []string{"School Tie"}, filterNames(names, "TIE"))
}

func stockRows(stock uint32) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"stock"}).AddRow(stock)
}

func TestCatalogRepo_AdjustStock_Decrement(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	mk.ExpectExec("UPDATE uniform_items SET stock").
		WithArgs(int64(-3), "300040-L", int64(-3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AdjustStock(context.Background(), "300040-L", -3))
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestCatalogRepo_AdjustStock_RejectsNegativeResult(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	// The guard matched no row: stock 2 cannot cover a decrement of 3.
	mk.ExpectExec("UPDATE uniform_items SET stock").
		WithArgs(int64(-3), "300040-L", int64(-3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mk.ExpectQuery("SELECT stock FROM uniform_items").
		WithArgs("300040-L").
		WillReturnRows(stockRows(2))

	err := repo.AdjustStock(context.Background(), "300040-L", -3)

	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCatalogRepo_AdjustStock_UnknownItem(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	mk.ExpectExec("UPDATE uniform_items SET stock").
		WithArgs(int64(-1), "999999-L", int64(-1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mk.ExpectQuery("SELECT stock FROM uniform_items").
		WithArgs("999999-L").
		WillReturnRows(sqlmock.NewRows([]string{"stock"}))

	err := repo.AdjustStock(context.Background(), "999999-L", -1)

	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalogRepo_AdjustStock_Restock(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	mk.ExpectExec("UPDATE uniform_items SET stock").
		WithArgs(int64(10), "300040-L", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AdjustStock(context.Background(), "300040-L", 10))
}

func TestCatalogRepo_ComputePrice(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	mk.ExpectQuery("SELECT price_cents FROM uniform_items").
		WithArgs("300040-L").
		WillReturnRows(sqlmock.NewRows([]string{"price_cents"}).AddRow(5000))

	total, err := repo.ComputePrice(context.Background(), "300040-L", 3)

	require.NoError(t, err)
	require.Equal(t, uint32(15000), total)
}

func TestCatalogRepo_ComputePrice_ZeroQuantity(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	mk.ExpectQuery("SELECT price_cents FROM uniform_items").
		WithArgs("300040-L").
		WillReturnRows(sqlmock.NewRows([]string{"price_cents"}).AddRow(5000))

	total, err := repo.ComputePrice(context.Background(), "300040-L", 0)

	require.NoError(t, err)
	require.Equal(t, uint32(0), total)
}

func TestCatalogRepo_ComputePrice_OverflowRejected(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	mk.ExpectQuery("SELECT price_cents FROM uniform_items").
		WithArgs("300040-L").
		WillReturnRows(sqlmock.NewRows([]string{"price_cents"}).AddRow(uint32(math.MaxUint32)))

	_, err := repo.ComputePrice(context.Background(), "300040-L", 2)

	require.ErrorIs(t, err, ErrQuantityTooLarge)
}

func TestCatalogRepo_ComputePrice_UnknownItem(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewCatalogRepo(db)

	mk.ExpectQuery("SELECT price_cents FROM uniform_items").
		WithArgs("999999-L").
		WillReturnRows(sqlmock.NewRows([]string{"price_cents"}))

	_, err := repo.ComputePrice(context.Background(), "999999-L", 1)

	require.ErrorIs(t, err, ErrItemNotFound)
}
