package handler

// This file defines the customer-facing catalog handlers: the item list,
// the item detail page (which populates the in-progress selection) and
// name search.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BradleyLewis08/uniform-store/internal/repository"
	"github.com/BradleyLewis08/uniform-store/internal/session"
)

// CatalogHandler serves the browse -> select part of the ordering flow.
type CatalogHandler struct {
	Catalog    *repository.CatalogRepo
	Selections session.SelectionStore
}

func NewCatalogHandler(catalog *repository.CatalogRepo, selections session.SelectionStore) *CatalogHandler {
	if catalog == nil || selections == nil {
		panic("nil dependency passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: catalog, Selections: selections}
}

// Display handles GET /display. It lists the unique item names, one per
// uniform item regardless of how many sizes it is stocked in.
func (h *CatalogHandler) Display(c echo.Context) error {
	names, err := h.Catalog.ListItemNames(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": names})
}

// DisplayItem handles GET /display/:item. It aggregates the size rows for
// the named item and records the result as the caller's in-progress
// selection, which the order endpoint consumes. Viewing another item
// overwrites the selection.
func (h *CatalogHandler) DisplayItem(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	name := strings.TrimSpace(c.Param("item"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item name required"})
	}

	ctx := c.Request().Context()
	details, err := h.Catalog.GetItem(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	sel := session.Selection{
		BaseID:     details.BaseID,
		Name:       details.Name,
		PriceCents: details.PriceCents,
		Sizes:      details.AvailableSizes,
	}
	if err := h.Selections.Put(ctx, uid, sel); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store selection"})
	}

	return c.JSON(http.StatusOK, echo.Map{"item": details})
}

// Search handles GET and POST /search. The term comes from the "search"
// form field or the "q" query parameter; matching is a case-insensitive
// substring scan over the unique item names.
func (h *CatalogHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		term = c.FormValue("search")
	}

	results, err := h.Catalog.Search(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"results": results,
		"term":    term,
	})
}
