package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toolshedapp/toolshed/internal/store"
)

// CartHandler serves the pending rental cart. It also holds the catalog so
// totals can be projected over a fresh listings snapshot on every read —
// the cart itself never caches prices.
type CartHandler struct {
	Cart    *store.Cart
	Catalog *store.Catalog
}

// NewCartHandler constructs a CartHandler and panics on nil dependencies.
func NewCartHandler(cart *store.Cart, catalog *store.Catalog) *CartHandler {
	if cart == nil || catalog == nil {
		panic("nil store passed to NewCartHandler")
	}
	return &CartHandler{Cart: cart, Catalog: catalog}
}

// cartView is the response shape shared by every cart endpoint that returns
// the updated cart.
func (h *CartHandler) cartView() echo.Map {
	lines := h.Cart.Lines()
	return echo.Map{
		"lines": lines,
		"total": h.Cart.Total(h.Catalog.Listings()),
	}
}

// View handles GET /v1/cart.
func (h *CartHandler) View(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartView())
}

// Add handles POST /v1/cart with body {"tool_id": "...", "days": n}. Days
// defaults to 1 when omitted; adding a tool already in the cart accumulates
// onto its line.
func (h *CartHandler) Add(c echo.Context) error {
	var req struct {
		ToolID string `json:"tool_id"`
		Days   int    `json:"days"`
	}
	if err := c.Bind(&req); err != nil || req.ToolID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tool_id required"})
	}
	if req.Days == 0 {
		req.Days = 1
	}
	h.Cart.Add(req.ToolID, req.Days)
	return c.JSON(http.StatusOK, h.cartView())
}

// UpdateDays handles PATCH /v1/cart/:toolId with body {"days": n}. The
// store clamps to a minimum of one day and ignores unknown tool IDs.
func (h *CartHandler) UpdateDays(c echo.Context) error {
	var req struct {
		Days int `json:"days"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	h.Cart.UpdateDays(c.Param("toolId"), req.Days)
	return c.JSON(http.StatusOK, h.cartView())
}

// Remove handles DELETE /v1/cart/:toolId.
func (h *CartHandler) Remove(c echo.Context) error {
	h.Cart.Remove(c.Param("toolId"))
	return c.JSON(http.StatusOK, h.cartView())
}

// Clear handles DELETE /v1/cart.
func (h *CartHandler) Clear(c echo.Context) error {
	h.Cart.Clear()
	return c.NoContent(http.StatusNoContent)
}
