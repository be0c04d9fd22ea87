package model

import "strings"

// CatalogItem represents one orderable stock-keeping unit in the
// `uniform_items` table: a (name, size) pair with its own stock count.
// The primary key is the composite ID, the base item identifier joined
// with the size (e.g. "300040-L").
//
// Fields:
//
//	ItemID     – composite primary key (base "-" size).
//	BaseID     – item identifier shared by all size variants.
//	Name       – display name (shared across sizes).
//	PriceCents – unit price in cents (shared across sizes).
//	Size       – size label (e.g. S, M, L, XL).
//	Stock      – remaining units; never negative.
type CatalogItem struct {
	ItemID     string // uniform_items.item_id
	BaseID     string // uniform_items.base_id
	Name       string // uniform_items.item_name
	PriceCents uint32 // uniform_items.price_cents
	Size       string // uniform_items.size
	Stock      uint32 // uniform_items.stock
}

// ItemDetails aggregates the size rows sharing one item name into a
// single view for the item detail page and the in-progress selection.
type ItemDetails struct {
	BaseID         string   `json:"base_id"`
	Name           string   `json:"name"`
	PriceCents     uint32   `json:"price_cents"`
	AvailableSizes []string `json:"available_sizes"`
}

// CompositeID joins a base item identifier and a size into the composite
// stock-keeping key used throughout the orders and catalog tables.
func CompositeID(baseID, size string) string {
	return baseID + "-" + strings.ToUpper(strings.TrimSpace(size))
}

// SplitCompositeID returns the base identifier and size encoded in a
// composite ID. The size is everything after the last dash, so base
// identifiers may themselves contain dashes. ok is false when the ID
// carries no size suffix.
func SplitCompositeID(id string) (baseID, size string, ok bool) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", "", false
	}
	return id[:i], id[i+1:], true
}
