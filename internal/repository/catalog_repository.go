package repository

import (
	"context"
	"database/sql"
	"math"
	"strings"

	"github.com/BradleyLewis08/uniform-store/internal/model"
)

// CatalogRepo provides access to the 'uniform_items' table. One row exists
// per (item, size) pair; rows sharing a name differ only in size, stock
// and composite key.
type CatalogRepo struct{ db *sql.DB }

func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{db: db} }

// ListItemNames returns the unique item names in first-seen row order,
// collapsing the per-size rows behind a single entry each.
func (r *CatalogRepo) ListItemNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT item_name FROM uniform_items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dedupeNames(names), nil
}

// GetItem aggregates all size rows sharing the given name into a single
// ItemDetails view. Price and base ID are shared across the variants, so
// they are taken from the first row. Returns ErrItemNotFound when the
// name matches nothing.
func (r *CatalogRepo) GetItem(ctx context.Context, name string) (model.ItemDetails, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT base_id, item_name, price_cents, size FROM uniform_items WHERE item_name=?",
		name)
	if err != nil {
		return model.ItemDetails{}, err
	}
	defer rows.Close()

	var d model.ItemDetails
	for rows.Next() {
		var (
			baseID, itemName, size string
			price                  uint32
		)
		if err := rows.Scan(&baseID, &itemName, &price, &size); err != nil {
			return model.ItemDetails{}, err
		}
		if d.BaseID == "" {
			d.BaseID = baseID
			d.Name = itemName
			d.PriceCents = price
		}
		d.AvailableSizes = append(d.AvailableSizes, size)
	}
	if err := rows.Err(); err != nil {
		return model.ItemDetails{}, err
	}
	if d.BaseID == "" {
		return model.ItemDetails{}, ErrItemNotFound
	}
	return d, nil
}

// GetByCompositeID fetches one stock-keeping unit by its composite key.
func (r *CatalogRepo) GetByCompositeID(ctx context.Context, itemID string) (model.CatalogItem, error) {
	var it model.CatalogItem
	err := r.db.QueryRowContext(ctx,
		"SELECT item_id, base_id, item_name, price_cents, size, stock FROM uniform_items WHERE item_id=? LIMIT 1",
		itemID).Scan(&it.ItemID, &it.BaseID, &it.Name, &it.PriceCents, &it.Size, &it.Stock)
	if err == sql.ErrNoRows {
		return model.CatalogItem{}, ErrItemNotFound
	}
	return it, err
}

// ListAll returns every stock-keeping unit, for the admin products page.
func (r *CatalogRepo) ListAll(ctx context.Context) ([]model.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT item_id, base_id, item_name, price_cents, size, stock FROM uniform_items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CatalogItem, 0, 32)
	for rows.Next() {
		var it model.CatalogItem
		if err := rows.Scan(&it.ItemID, &it.BaseID, &it.Name, &it.PriceCents, &it.Size, &it.Stock); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddItem inserts a new stock-keeping unit. The composite key is derived
// from the base ID and size.
func (r *CatalogRepo) AddItem(ctx context.Context, it model.CatalogItem) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO uniform_items (item_id, base_id, item_name, price_cents, size, stock) VALUES (?,?,?,?,?,?)",
		model.CompositeID(it.BaseID, it.Size), it.BaseID, it.Name, it.PriceCents, it.Size, it.Stock)
	return err
}

// GetStock returns the current stock count for a composite key.
func (r *CatalogRepo) GetStock(ctx context.Context, itemID string) (uint32, error) {
	var stock uint32
	err := r.db.QueryRowContext(ctx,
		"SELECT stock FROM uniform_items WHERE item_id=? LIMIT 1", itemID).Scan(&stock)
	if err == sql.ErrNoRows {
		return 0, ErrItemNotFound
	}
	return stock, err
}

// HasSufficientStock reports whether the current stock covers the
// requested quantity. Note that check-then-order is advisory only;
// AdjustStock is the authoritative guard.
func (r *CatalogRepo) HasSufficientStock(ctx context.Context, itemID string, quantity uint32) (bool, error) {
	stock, err := r.GetStock(ctx, itemID)
	if err != nil {
		return false, err
	}
	return stock >= quantity, nil
}

// AdjustStock applies a delta to the stock count as a single conditional
// update: the row is only modified when the resulting value stays
// non-negative. A negative delta records an order, a positive one an
// admin restock. Returns ErrInsufficientStock when the guard rejects the
// change and ErrItemNotFound when the composite key is unknown. The
// conditional form makes concurrent orders against the same low-stock
// item safe without an explicit transaction.
func (r *CatalogRepo) AdjustStock(ctx context.Context, itemID string, delta int64) error {
	if delta == 0 {
		_, err := r.GetStock(ctx, itemID)
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE uniform_items SET stock = stock + ? WHERE item_id=? AND stock + ? >= 0",
		delta, itemID, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish a missing row from a rejected decrement.
		if _, err := r.GetStock(ctx, itemID); err != nil {
			return err
		}
		return ErrInsufficientStock
	}
	return nil
}

// ComputePrice returns unit price * quantity for a composite key. The
// multiplication runs in uint64 because the quantity comes straight from
// the client; a product that does not fit the price column is rejected
// with ErrQuantityTooLarge instead of wrapping around.
func (r *CatalogRepo) ComputePrice(ctx context.Context, itemID string, quantity uint32) (uint32, error) {
	var unit uint32
	err := r.db.QueryRowContext(ctx,
		"SELECT price_cents FROM uniform_items WHERE item_id=? LIMIT 1", itemID).Scan(&unit)
	if err == sql.ErrNoRows {
		return 0, ErrItemNotFound
	}
	if err != nil {
		return 0, err
	}
	total := uint64(unit) * uint64(quantity)
	if total > math.MaxUint32 {
		return 0, ErrQuantityTooLarge
	}
	return uint32(total), nil
}

// Search returns the unique item names containing the term,
// case-insensitively, preserving catalog order.
func (r *CatalogRepo) Search(ctx context.Context, term string) ([]string, error) {
	names, err := r.ListItemNames(ctx)
	if err != nil {
		return nil, err
	}
	return filterNames(names, term), nil
}

// dedupeNames collapses duplicate names while preserving the order in
// which each name first appeared.
func dedupeNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// filterNames keeps the names containing term as a case-insensitive
// substring. An empty term matches everything.
func filterNames(names []string, term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if term == "" || strings.Contains(strings.ToLower(n), term) {
			out = append(out, n)
		}
	}
	return out
}
