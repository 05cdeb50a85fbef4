// Package handler exposes HTTP handlers for both public and admin
// endpoints. This file defines the public ticket query edge: the
// storefront's read-only view of the ticket store plus the resolved
// current price. No authentication applies to these routes.
package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/aliiliau/luau-booking/internal/pricing"
    "github.com/aliiliau/luau-booking/internal/repository"
)

// PublicHandler aggregates the dependencies of the unauthenticated
// storefront endpoints.
type PublicHandler struct {
    Tickets  *repository.TicketRepo // read-only access to the ticket store
    Resolver *pricing.Resolver      // current-price resolution
}

// NewPublicHandler constructs a PublicHandler and panics if the ticket
// repository is missing.  The resolver may be nil in degraded setups;
// the price endpoint then answers with the store-backed fallback chain
// collapsed to the default.
func NewPublicHandler(tickets *repository.TicketRepo, resolver *pricing.Resolver) *PublicHandler {
    if tickets == nil {
        panic("nil ticket repository passed to NewPublicHandler")
    }
    return &PublicHandler{Tickets: tickets, Resolver: resolver}
}

// GetActiveTickets handles GET /v1/tickets and returns every active
// ticket sorted ascending by order.  Inactive tickets never appear on
// this route regardless of their order value.
func (h *PublicHandler) GetActiveTickets(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Tickets.ListActive())
}

// GetActiveTicket handles GET /v1/tickets/active and returns the
// lowest-ordered active ticket, or the documented fallback record when
// no ticket is active.  The storefront uses this as "the current
// offer"; it never fails with an empty store.
func (h *PublicHandler) GetActiveTicket(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Tickets.PrimaryActive())
}

// GetPrice handles GET /v1/price and returns the resolved current
// ticket price as {"price": N}.  Resolution order is snapshot cache,
// then store, then the fixed default; see the pricing package.
func (h *PublicHandler) GetPrice(c echo.Context) error {
    if h.Resolver == nil {
        return c.JSON(http.StatusOK, echo.Map{"price": h.Tickets.PrimaryActive().Price})
    }
    return c.JSON(http.StatusOK, echo.Map{"price": h.Resolver.Price(c.Request().Context())})
}
