// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let higher layers such as handlers
// distinguish between failure scenarios: a missing catalog row renders a
// 404, an insufficient stock level renders a 409, and so on, instead of
// assuming the first row of every lookup exists.
package repository

import "errors"

// ErrItemNotFound is returned when a catalog lookup matches no row,
// either by composite ID or by item name.
var ErrItemNotFound = errors.New("item not found")

// ErrOrderNotFound is returned when an order lookup matches no row.
var ErrOrderNotFound = errors.New("order not found")

// ErrInsufficientStock is returned by AdjustStock when applying the delta
// would drive the stock count negative. The row is left untouched.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrQuantityTooLarge is returned by ComputePrice when unit price times
// quantity no longer fits the price column. Quantities this size are
// never legitimate orders.
var ErrQuantityTooLarge = errors.New("quantity too large")

// ErrInvalidTransition is returned when an order status update is guarded
// on a status the order no longer has. Handlers translate this into an
// HTTP 409 response.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into an HTTP 403
// response.
var ErrForbidden = errors.New("forbidden")
