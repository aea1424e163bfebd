package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toolshedapp/toolshed/internal/store"
)

// BookingHandler serves the order history and the checkout operation, which
// snapshots the cart against the catalog into a new frozen booking.
type BookingHandler struct {
	Bookings *store.Bookings
	Cart     *store.Cart
	Catalog  *store.Catalog
}

// NewBookingHandler constructs a BookingHandler and panics on nil dependencies.
func NewBookingHandler(bookings *store.Bookings, cart *store.Cart, catalog *store.Catalog) *BookingHandler {
	if bookings == nil || cart == nil || catalog == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Cart: cart, Catalog: catalog}
}

// List handles GET /v1/bookings, most recent first.
func (h *BookingHandler) List(c echo.Context) error {
	history := h.Bookings.History()
	return c.JSON(http.StatusOK, echo.Map{
		"data":  history,
		"total": len(history),
	})
}

// Checkout handles POST /v1/checkout. The bookings store itself never
// touches the cart, so the clear after a successful submit happens here, on
// the caller's side. Submission cannot fail: an empty or stale cart still
// produces a valid zero-total booking.
func (h *BookingHandler) Checkout(c echo.Context) error {
	id := h.Bookings.Add(h.Cart.Lines(), h.Catalog.Listings())
	h.Cart.Clear()
	return c.JSON(http.StatusCreated, echo.Map{"booking_id": id})
}

// SetStatus handles PATCH /v1/bookings/:id/status with body
// {"status": "requested"|"confirmed"|"completed"}. An unknown booking ID is
// a silent no-op; only an invalid status value is rejected.
func (h *BookingHandler) SetStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Bookings.SetStatus(c.Param("id"), req.Status); err != nil {
		if errors.Is(err, store.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearAll handles DELETE /v1/bookings and irreversibly wipes the history.
func (h *BookingHandler) ClearAll(c echo.Context) error {
	h.Bookings.ClearAll()
	return c.NoContent(http.StatusNoContent)
}
