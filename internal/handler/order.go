package handler

// Handlers for placing orders against the in-progress selection, listing
// a customer's own orders, and advancing an order through the completion
// workflow.

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/BradleyLewis08/uniform-store/internal/model"
	"github.com/BradleyLewis08/uniform-store/internal/repository"
	"github.com/BradleyLewis08/uniform-store/internal/service"
	"github.com/BradleyLewis08/uniform-store/internal/session"
)

// OrderHandler wires the order workflow and ledger to HTTP.
type OrderHandler struct {
	Flow       *service.OrderFlow
	Orders     *repository.OrderRepo
	Selections session.SelectionStore
}

func NewOrderHandler(flow *service.OrderFlow, orders *repository.OrderRepo, selections session.SelectionStore) *OrderHandler {
	if flow == nil || orders == nil || selections == nil {
		panic("nil dependency passed to NewOrderHandler")
	}
	return &OrderHandler{Flow: flow, Orders: orders, Selections: selections}
}

type placeOrderReq struct {
	Size     string `json:"size" form:"size"`
	Quantity uint32 `json:"quantity" form:"quantity"`
}

// orderView is the JSON shape orders are rendered in. Prices stay in
// cents; clients format currency.
type orderView struct {
	ID              uint64 `json:"order_id"`
	ItemID          string `json:"item_id"`
	Size            string `json:"size"`
	Quantity        uint32 `json:"quantity"`
	OrderDate       string `json:"order_date"`
	CustomerID      uint64 `json:"customer_id"`
	FinalPriceCents uint32 `json:"final_price_cents"`
	Status          string `json:"status"`
}

func toOrderView(o model.Order) orderView {
	// The size is baked into the composite key; surface it separately so
	// clients need not parse item IDs.
	_, size, _ := model.SplitCompositeID(o.ItemID)
	return orderView{
		ID:              o.ID,
		ItemID:          o.ItemID,
		Size:            size,
		Quantity:        o.Quantity,
		OrderDate:       o.OrderDate.Format("2006-01-02"),
		CustomerID:      o.CustomerID,
		FinalPriceCents: o.FinalPriceCents,
		Status:          string(o.Status),
	}
}

// ShowSelection handles GET /order: it returns the in-progress selection
// so the client can render the size/quantity form.
func (h *OrderHandler) ShowSelection(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sel, err := h.Selections.Get(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, session.ErrNoSelection) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no item selected; view an item first"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load selection"})
	}
	return c.JSON(http.StatusOK, echo.Map{"selection": sel})
}

// PlaceOrder handles POST /order. The selected item comes from the
// session; size and quantity come from the request. On success stock has
// already been decremented and the new order is returned.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req placeOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Size == "" || req.Quantity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "size and quantity required"})
	}

	ctx := c.Request().Context()
	sel, err := h.Selections.Get(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, session.ErrNoSelection) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no item selected; view an item first"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load selection"})
	}

	order, err := h.Flow.Place(ctx, actor, sel, req.Size, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return c.JSON(http.StatusConflict, echo.Map{"error": "insufficient stock remaining to make this order"})
		case errors.Is(err, service.ErrUnknownSize):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "size not available for this item"})
		case errors.Is(err, repository.ErrQuantityTooLarge):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity too large"})
		case errors.Is(err, repository.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to place order"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"order": toOrderView(order)})
}

// MyOrders handles GET /orders: the caller's own order history.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	orders, err := h.Orders.ListByCustomer(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": out})
}

// Complete handles GET and POST /complete/:order. An admin advances an
// Incomplete order to Pending; the owning customer advances a Pending
// order to Complete. Any other combination is rejected: 403 when the
// caller has no business with the order, 409 when the order is not in
// the expected state.
func (h *OrderHandler) Complete(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	orderID, err := strconv.ParseUint(c.Param("order"), 10, 64)
	if err != nil || orderID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	order, err := h.Flow.Complete(c.Request().Context(), actor, orderID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "order is not in a state that allows this transition"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update order"})
	}

	return c.JSON(http.StatusOK, echo.Map{"order": toOrderView(order)})
}
