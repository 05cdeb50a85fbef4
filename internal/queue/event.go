// Package queue defines message payloads exchanged over the message broker.
package queue

import "encoding/json"

// Notification kinds carried on the venue.notifications queue.
const (
    KindContactMessage   = "contact.message"
    KindNewsletterSignup = "newsletter.signup"
    KindBookingConfirmed = "booking.confirmed"
)

// Notification is the envelope every message on the queue is wrapped
// in.  Kind selects which payload type the body decodes into.
type Notification struct {
    Kind    string          `json:"kind"`
    Payload json.RawMessage `json:"payload"`
}

// ContactMessageEvent is published when a visitor submits the contact
// form.  It carries everything the notification consumer needs to
// relay the message without querying the service.
type ContactMessageEvent struct {
    Name       string `json:"name"`
    Email      string `json:"email"`
    Phone      string `json:"phone,omitempty"`
    Message    string `json:"message"`
    ReceivedAt string `json:"received_at"`
}

// NewsletterSignupEvent is published when a visitor subscribes to the
// newsletter.
type NewsletterSignupEvent struct {
    Email      string `json:"email"`
    ReceivedAt string `json:"received_at"`
}

// BookingConfirmedEvent is published when a booking submission is
// accepted.  It contains enough information for downstream consumers
// to log, notify, or trigger analytics without querying the service.
type BookingConfirmedEvent struct {
    Reference     string  `json:"reference"`
    Date          string  `json:"date"`
    SessionID     string  `json:"session_id"`
    TicketType    string  `json:"ticket_type"`
    Adults        int     `json:"adults"`
    Children      int     `json:"children"`
    TotalAmount   float64 `json:"total_amount"`
    CustomerName  string  `json:"customer_name"`
    CustomerEmail string  `json:"customer_email"`
    CustomerPhone string  `json:"customer_phone,omitempty"`
    ConfirmedAt   string  `json:"confirmed_at"`
}
