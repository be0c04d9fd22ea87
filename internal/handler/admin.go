package handler

// This file defines HTTP handlers for the store administrator: viewing
// every order, inspecting a single order, managing products and
// restocking. All routes sit behind RequireRole(model.RoleAdmin); these
// handlers do not re-check the role.

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BradleyLewis08/uniform-store/internal/model"
	"github.com/BradleyLewis08/uniform-store/internal/repository"
)

// AdminHandler groups the repositories the admin surface needs.
type AdminHandler struct {
	Catalog *repository.CatalogRepo
	Orders  *repository.OrderRepo
}

func NewAdminHandler(catalog *repository.CatalogRepo, orders *repository.OrderRepo) *AdminHandler {
	if catalog == nil || orders == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Catalog: catalog, Orders: orders}
}

// itemView renders one stock-keeping unit for the products and stocks
// pages.
type itemView struct {
	ItemID     string `json:"item_id"`
	BaseID     string `json:"base_id"`
	Name       string `json:"name"`
	PriceCents uint32 `json:"price_cents"`
	Size       string `json:"size"`
	Stock      uint32 `json:"stock"`
}

func toItemView(it model.CatalogItem) itemView {
	return itemView{
		ItemID:     it.ItemID,
		BaseID:     it.BaseID,
		Name:       it.Name,
		PriceCents: it.PriceCents,
		Size:       it.Size,
		Stock:      it.Stock,
	}
}

// Dashboard handles GET /admin. It summarizes the ledger by status so
// the admin sees at a glance how many orders are waiting on them.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	orders, err := h.Orders.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	counts := map[string]int{
		string(model.StatusIncomplete): 0,
		string(model.StatusPending):    0,
		string(model.StatusComplete):   0,
	}
	for _, o := range orders {
		counts[string(o.Status)]++
	}
	return c.JSON(http.StatusOK, echo.Map{
		"orders_total":     len(orders),
		"orders_by_status": counts,
	})
}

// AllOrders handles GET /admin/orders: the entire order ledger.
func (h *AdminHandler) AllOrders(c echo.Context) error {
	orders, err := h.Orders.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": out})
}

// GetOrder handles GET /admin/orders/:id, the management view for a
// single order.
func (h *AdminHandler) GetOrder(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	order, err := h.Orders.GetByID(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"order": toOrderView(order)})
}

// Products handles GET /admin/products: every stock-keeping unit with
// its current stock level.
func (h *AdminHandler) Products(c echo.Context) error {
	items, err := h.Catalog.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]itemView, 0, len(items))
	for _, it := range items {
		out = append(out, toItemView(it))
	}
	return c.JSON(http.StatusOK, echo.Map{"products": out})
}

type addItemReq struct {
	BaseID     string `json:"base_id" form:"base_id"`
	Name       string `json:"name" form:"name"`
	PriceCents uint32 `json:"price_cents" form:"price_cents"`
	Size       string `json:"size" form:"size"`
	Stock      uint32 `json:"stock" form:"stock"`
}

// AddProduct handles POST /admin/products: inserting a new stock-keeping
// unit into the catalog.
func (h *AdminHandler) AddProduct(c echo.Context) error {
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.BaseID = strings.TrimSpace(req.BaseID)
	req.Name = strings.TrimSpace(req.Name)
	req.Size = strings.ToUpper(strings.TrimSpace(req.Size))
	if req.BaseID == "" || req.Name == "" || req.Size == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "base_id/name/size required"})
	}

	it := model.CatalogItem{
		BaseID:     req.BaseID,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Size:       req.Size,
		Stock:      req.Stock,
	}
	if err := h.Catalog.AddItem(c.Request().Context(), it); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "item already exists in that size"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"item_id": model.CompositeID(req.BaseID, req.Size),
	})
}

// StockForm handles GET /admin/stocks/:item: current details for the
// stock-keeping unit about to be restocked.
func (h *AdminHandler) StockForm(c echo.Context) error {
	itemID := strings.TrimSpace(c.Param("item"))
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item id required"})
	}
	it, err := h.Catalog.GetByCompositeID(c.Request().Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toItemView(it)})
}

type restockReq struct {
	QuantityAdded int64 `json:"quantity_added" form:"quantity_added"`
}

// Restock handles POST /admin/stocks/:item. The delta is usually
// positive; a negative value (shrinkage correction) still cannot push
// stock below zero thanks to the conditional update.
func (h *AdminHandler) Restock(c echo.Context) error {
	itemID := strings.TrimSpace(c.Param("item"))
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item id required"})
	}
	var req restockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	if err := h.Catalog.AdjustStock(ctx, itemID, req.QuantityAdded); err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		case errors.Is(err, repository.ErrInsufficientStock):
			return c.JSON(http.StatusConflict, echo.Map{"error": "adjustment would make stock negative"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	stock, err := h.Catalog.GetStock(ctx, itemID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item_id": itemID,
		"stock":   stock,
	})
}
