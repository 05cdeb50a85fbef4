package handler // handler package contains the booking edges

import (
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/aliiliau/luau-booking/internal/queue"
    queue_publisher "github.com/aliiliau/luau-booking/internal/service"
    "github.com/aliiliau/luau-booking/internal/trybooking"
)

// Per-head booking rates quoted by the provider for direct bookings.
const (
    adultRate = 129.99
    childRate = 79.99
)

// BookingHandler serves availability queries and booking submissions.
// Both sides of it sit at the external booking-provider boundary: the
// availability data comes from the (currently simulated) provider
// client, and the confirmation this edge fabricates stands in for a
// real payment/booking integration.
type BookingHandler struct {
    Provider  *trybooking.Client
    Publisher queue_publisher.Publisher
}

// NewBookingHandler constructs a BookingHandler and panics when a
// dependency is missing.
func NewBookingHandler(provider *trybooking.Client, pub queue_publisher.Publisher) *BookingHandler {
    if provider == nil || pub == nil {
        panic("nil dependency passed to NewBookingHandler")
    }
    return &BookingHandler{Provider: provider, Publisher: pub}
}

// GetAvailability handles GET /v1/booking?date=YYYY-MM-DD and returns
// the sessions bookable on that date.  A missing or malformed date is
// rejected before the provider is consulted.
func (h *BookingHandler) GetAvailability(c echo.Context) error {
    date := c.QueryParam("date")
    if date == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Date parameter is required"})
    }
    sessions, err := h.Provider.AvailableSessions(date)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid date"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "success":           true,
        "date":              date,
        "availableSessions": sessions,
    })
}

// bookingRequest is the POST /v1/booking payload.
type bookingRequest struct {
    Date      string `json:"date"`
    SessionID string `json:"sessionId"`
    Tickets   *struct {
        Adults   int `json:"adults"`
        Children int `json:"children"`
    } `json:"tickets"`
    CustomerInfo *struct {
        Name  string `json:"name"`
        Email string `json:"email"`
        Phone string `json:"phone"`
    } `json:"customerInfo"`
    TicketTypeID string `json:"ticketTypeId"`
}

// CreateBooking handles POST /v1/booking.  It validates the submission,
// resolves the provider ticket option, fabricates a confirmation
// reference and publishes a BookingConfirmedEvent.  The event publish
// is best-effort; the booking response does not depend on it.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
    var body bookingRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
    }
    if body.Date == "" || body.SessionID == "" || body.Tickets == nil || body.CustomerInfo == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing required booking information"})
    }
    name := strings.TrimSpace(body.CustomerInfo.Name)
    email := body.CustomerInfo.Email
    if name == "" || email == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Name and email are required"})
    }

    // Some storefront widgets append the ticket option to the session
    // id ("<session>-vip").  A recognized suffix overrides an absent
    // ticketTypeId; unknown suffixes are left on the session id.
    sessionID := body.SessionID
    typeID := body.TicketTypeID
    if typeID == "" {
        if i := strings.LastIndex(sessionID, "-"); i > 0 {
            if opt := sessionID[i+1:]; trybooking.KnownTicketOption(opt) {
                typeID = opt
                sessionID = sessionID[:i]
            }
        }
    }
    option := trybooking.TicketOptionByID(typeID)

    total := float64(body.Tickets.Adults)*adultRate + float64(body.Tickets.Children)*childRate
    reference := trybooking.NewBookingReference()

    ev := queue.BookingConfirmedEvent{
        Reference:     reference,
        Date:          body.Date,
        SessionID:     sessionID,
        TicketType:    option.ID,
        Adults:        body.Tickets.Adults,
        Children:      body.Tickets.Children,
        TotalAmount:   total,
        CustomerName:  name,
        CustomerEmail: email,
        CustomerPhone: strings.TrimSpace(body.CustomerInfo.Phone),
        ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    if err := h.Publisher.PublishBookingConfirmed(c.Request().Context(), ev); err != nil {
        log.Printf("booking: notification publish failed: %v", err)
    }

    return c.JSON(http.StatusOK, echo.Map{
        "success":          true,
        "message":          "Your booking has been confirmed!",
        "bookingReference": reference,
        "date":             body.Date,
        "sessionId":        body.SessionID,
        "ticketType":       option,
        "tickets":          body.Tickets,
        "totalAmount":      total,
        "customerInfo": echo.Map{
            "name":  name,
            "email": email,
            "phone": body.CustomerInfo.Phone,
        },
    })
}
