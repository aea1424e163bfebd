// Package handler exposes the HTTP surface consumed by the device UI. Browse
// and search routes are public; every mutating route sits behind the JWT
// middleware. Handlers hold store references, translate request bodies and
// query params, and map store results onto JSON responses — all domain rules
// live in the store layer.
package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/toolshedapp/toolshed/internal/model"
	"github.com/toolshedapp/toolshed/internal/search"
	"github.com/toolshedapp/toolshed/internal/store"
)

// CatalogHandler serves tool listings, the browse/search view and the
// favorites set.
type CatalogHandler struct {
	Catalog *store.Catalog
}

// NewCatalogHandler constructs a CatalogHandler and panics if the store is nil.
func NewCatalogHandler(catalog *store.Catalog) *CatalogHandler {
	if catalog == nil {
		panic("nil catalog passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: catalog}
}

// createToolRequest is the body of POST /v1/tools. The ID and archived flag
// are never client-supplied; the store assigns both.
type createToolRequest struct {
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	PhotoRef    string  `json:"photo_ref"`
}

// Browse handles GET /v1/tools. Query params: q (substring of the name,
// case-insensitive), category (exact), min_price / max_price (empty or
// unparseable means unbounded). Archived listings never appear.
func (h *CatalogHandler) Browse(c echo.Context) error {
	q := search.Query{
		Text:     c.QueryParam("q"),
		Category: strings.TrimSpace(c.QueryParam("category")),
		MinPrice: c.QueryParam("min_price"),
		MaxPrice: c.QueryParam("max_price"),
	}
	items := search.Filter(h.Catalog.Listings(), q)
	return c.JSON(http.StatusOK, echo.Map{
		"data":  items,
		"total": len(items),
	})
}

// Get handles GET /v1/tools/:id and returns the full listing, archived or
// not; archiving only hides a listing from the browse view.
func (h *CatalogHandler) Get(c echo.Context) error {
	l, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "tool not found"})
	}
	return c.JSON(http.StatusOK, l)
}

// Create handles POST /v1/tools.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createToolRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	id := h.Catalog.Add(model.Listing{
		Name:        req.Name,
		PricePerDay: req.PricePerDay,
		Category:    req.Category,
		Description: req.Description,
		PhotoRef:    req.PhotoRef,
	})
	l, _ := h.Catalog.Get(id)
	return c.JSON(http.StatusCreated, l)
}

// Update handles PATCH /v1/tools/:id with a partial listing body. Unknown
// IDs are a no-op in the store, so the response is 204 either way.
func (h *CatalogHandler) Update(c echo.Context) error {
	var patch model.ListingPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	h.Catalog.Update(c.Param("id"), patch)
	return c.NoContent(http.StatusNoContent)
}

// Archive handles POST /v1/tools/:id/archive with body {"archived": bool}.
func (h *CatalogHandler) Archive(c echo.Context) error {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	h.Catalog.SetArchived(c.Param("id"), req.Archived)
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/tools/:id. The store cascades the removal into
// the favorites set.
func (h *CatalogHandler) Delete(c echo.Context) error {
	h.Catalog.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Favorites handles GET /v1/favorites and returns the favorited IDs.
func (h *CatalogHandler) Favorites(c echo.Context) error {
	ids := h.Catalog.Favorites()
	return c.JSON(http.StatusOK, echo.Map{
		"data":  ids,
		"total": len(ids),
	})
}

// ToggleFavorite handles POST /v1/tools/:id/favorite and reports the
// membership state after the toggle.
func (h *CatalogHandler) ToggleFavorite(c echo.Context) error {
	id := c.Param("id")
	h.Catalog.ToggleFavorite(id)
	return c.JSON(http.StatusOK, echo.Map{"favorite": h.Catalog.IsFavorite(id)})
}
