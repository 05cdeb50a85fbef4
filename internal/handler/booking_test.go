package handler

import (
    "net/http"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/require"

    "github.com/aliiliau/luau-booking/internal/trybooking"
)

func newBookingEcho(pub *fakePublisher) *echo.Echo {
    h := NewBookingHandler(trybooking.NewClient(), pub)
    e := echo.New()
    e.GET("/v1/booking", h.GetAvailability)
    e.POST("/v1/booking", h.CreateBooking)
    return e
}

func TestGetAvailability_RequiresDate(t *testing.T) {
    e := newBookingEcho(&fakePublisher{})

    rec := doJSON(e, http.MethodGet, "/v1/booking", "", nil)
    require.Equal(t, http.StatusBadRequest, rec.Code)

    rec = doJSON(e, http.MethodGet, "/v1/booking?date=yesterday", "", nil)
    require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailability_ShowNights(t *testing.T) {
    e := newBookingEcho(&fakePublisher{})

    // 2025-01-03 is a Friday: one evening session.
    rec := doJSON(e, http.MethodGet, "/v1/booking?date=2025-01-03", "", nil)
    require.Equal(t, http.StatusOK, rec.Code)
    body := decodeBody(t, rec)
    sessions := body["availableSessions"].([]any)
    require.Len(t, sessions, 1)
    first := sessions[0].(map[string]any)
    require.Equal(t, "session-2025-01-03-evening", first["id"])
    require.Equal(t, "6:00 PM - 9:00 PM", first["time"])

    // 2025-01-06 is a Monday: dark night, no sessions.
    rec = doJSON(e, http.MethodGet, "/v1/booking?date=2025-01-06", "", nil)
    require.Equal(t, http.StatusOK, rec.Code)
    body = decodeBody(t, rec)
    require.Empty(t, body["availableSessions"])
}

func TestCreateBooking_ValidatesRequiredFields(t *testing.T) {
    pub := &fakePublisher{}
    e := newBookingEcho(pub)

    for _, body := range []string{
        `{}`,
        `{"date":"2025-01-03","sessionId":"s1","tickets":{"adults":2}}`, // no customerInfo
        `{"date":"2025-01-03","sessionId":"s1","tickets":{"adults":2},"customerInfo":{"email":"a@b.co"}}`, // no name
        `{"date":"2025-01-03","sessionId":"s1","tickets":{"adults":2},"customerInfo":{"name":"Kai"}}`,     // no email
    } {
        rec := doJSON(e, http.MethodPost, "/v1/booking", body, nil)
        require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
    }
    require.Empty(t, pub.bookings)
}

func TestCreateBooking_ConfirmsAndPublishes(t *testing.T) {
    pub := &fakePublisher{}
    e := newBookingEcho(pub)

    rec := doJSON(e, http.MethodPost, "/v1/booking",
        `{"date":"2025-01-03","sessionId":"evening","tickets":{"adults":2,"children":1},"customerInfo":{"name":"Kai","email":"kai@example.com"}}`, nil)
    require.Equal(t, http.StatusOK, rec.Code)

    body := decodeBody(t, rec)
    require.Equal(t, true, body["success"])
    ref := body["bookingReference"].(string)
    require.True(t, strings.HasPrefix(ref, "ALI"))
    require.Len(t, ref, 9)
    require.InDelta(t, 2*129.99+1*79.99, body["totalAmount"].(float64), 0.001)

    require.Len(t, pub.bookings, 1)
    require.Equal(t, ref, pub.bookings[0].Reference)
    require.Equal(t, 2, pub.bookings[0].Adults)
    require.Equal(t, "standard", pub.bookings[0].TicketType)
}

func TestCreateBooking_ResolvesCombinedSessionID(t *testing.T) {
    pub := &fakePublisher{}
    e := newBookingEcho(pub)

    rec := doJSON(e, http.MethodPost, "/v1/booking",
        `{"date":"2025-01-03","sessionId":"evening-vip","tickets":{"adults":1},"customerInfo":{"name":"Kai","email":"kai@example.com"}}`, nil)
    require.Equal(t, http.StatusOK, rec.Code)

    require.Len(t, pub.bookings, 1)
    require.Equal(t, "vip", pub.bookings[0].TicketType)
    require.Equal(t, "evening", pub.bookings[0].SessionID)
}

func TestCreateBooking_BrokerFailureStillConfirms(t *testing.T) {
    pub := &fakePublisher{err: errBroker}
    e := newBookingEcho(pub)

    rec := doJSON(e, http.MethodPost, "/v1/booking",
        `{"date":"2025-01-03","sessionId":"evening","tickets":{"adults":1},"customerInfo":{"name":"Kai","email":"kai@example.com"}}`, nil)
    require.Equal(t, http.StatusOK, rec.Code)
    require.Equal(t, true, decodeBody(t, rec)["success"])
}
