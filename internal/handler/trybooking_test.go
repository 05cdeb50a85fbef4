package handler

import (
    "encoding/json"
    "net/http"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/require"

    "github.com/aliiliau/luau-booking/internal/trybooking"
)

func newTryBookingEcho() *echo.Echo {
    h := NewTryBookingHandler(trybooking.NewClient())
    e := echo.New()
    e.GET("/v1/trybooking/events", h.GetEvents)
    e.GET("/v1/trybooking/events/:eventId", h.GetEvent)
    e.GET("/v1/trybooking/sessions/:sessionId", h.GetSession)
    return e
}

func TestTryBooking_GetEvents(t *testing.T) {
    e := newTryBookingEcho()

    rec := doJSON(e, http.MethodGet, "/v1/trybooking/events", "", nil)
    require.Equal(t, http.StatusOK, rec.Code)

    var events []trybooking.Event
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
    require.NotEmpty(t, events)
    require.NotEmpty(t, events[0].SessionList)
}

func TestTryBooking_GetEvent(t *testing.T) {
    e := newTryBookingEcho()

    rec := doJSON(e, http.MethodGet, "/v1/trybooking/events/1001", "", nil)
    require.Equal(t, http.StatusOK, rec.Code)

    rec = doJSON(e, http.MethodGet, "/v1/trybooking/events/9999", "", nil)
    require.Equal(t, http.StatusNotFound, rec.Code)

    rec = doJSON(e, http.MethodGet, "/v1/trybooking/events/not-a-number", "", nil)
    require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTryBooking_GetSessionIncludesAvailabilityBadge(t *testing.T) {
    e := newTryBookingEcho()

    rec := doJSON(e, http.MethodGet, "/v1/trybooking/sessions/50002", "", nil)
    require.Equal(t, http.StatusOK, rec.Code)
    body := decodeBody(t, rec)
    // Session 50002 has 17 of 120 seats left, under the 20% threshold.
    require.Equal(t, "Limited", body["availabilityStatus"])

    rec = doJSON(e, http.MethodGet, "/v1/trybooking/sessions/99999", "", nil)
    require.Equal(t, http.StatusNotFound, rec.Code)
}
