package handler // handler package contains the booking-provider proxy endpoints

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/aliiliau/luau-booking/internal/trybooking"
)

// TryBookingHandler proxies the provider's event and session catalog to
// the storefront widget so the provider credentials never reach the
// browser.
type TryBookingHandler struct {
    Provider *trybooking.Client
}

// NewTryBookingHandler constructs a TryBookingHandler and panics when
// the provider client is missing.
func NewTryBookingHandler(provider *trybooking.Client) *TryBookingHandler {
    if provider == nil {
        panic("nil provider passed to NewTryBookingHandler")
    }
    return &TryBookingHandler{Provider: provider}
}

// GetEvents handles GET /v1/trybooking/events.
func (h *TryBookingHandler) GetEvents(c echo.Context) error {
    events, err := h.Provider.Events()
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch events"})
    }
    return c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /v1/trybooking/events/:eventId.
func (h *TryBookingHandler) GetEvent(c echo.Context) error {
    eventID, err := strconv.Atoi(c.Param("eventId"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
    }
    ev, found, err := h.Provider.EventByID(eventID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch event"})
    }
    if !found {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
    }
    return c.JSON(http.StatusOK, ev)
}

// GetSession handles GET /v1/trybooking/sessions/:sessionId.  The
// response includes the derived availability badge alongside the raw
// session so the storefront does not re-implement the bucketing.
func (h *TryBookingHandler) GetSession(c echo.Context) error {
    sessionID, err := strconv.Atoi(c.Param("sessionId"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
    }
    s, found, err := h.Provider.SessionByID(sessionID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch session"})
    }
    if !found {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "session":            s,
        "availabilityStatus": trybooking.SessionStatus(s),
    })
}
