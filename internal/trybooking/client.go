// Package trybooking wraps the third-party booking provider. The real
// provider exposes a REST API for events, sessions and bookings; this
// client currently simulates its responses so the site can run without
// provider credentials. The simulation is a stand-in at an external
// collaborator boundary, not business logic: swapping in real HTTP
// calls changes nothing above this package.
package trybooking

import (
    "fmt"
    "math/rand"
    "net/http"
    "os"
    "time"
)

// Client talks to the booking provider. BaseURL and APIKey are read
// from the environment so a future switch to live calls only needs the
// request code. HTTPClient carries a timeout because the provider is
// outside our control.
type Client struct {
    BaseURL    string
    APIKey     string
    HTTPClient *http.Client
}

// NewClient constructs a Client from TRYBOOKING_API_URL and
// TRYBOOKING_API_KEY, with the provider's public endpoint and a demo
// key as defaults.
func NewClient() *Client {
    base := os.Getenv("TRYBOOKING_API_URL")
    if base == "" {
        base = "https://api.trybooking.com/v1"
    }
    key := os.Getenv("TRYBOOKING_API_KEY")
    if key == "" {
        key = "demo-api-key"
    }
    return &Client{
        BaseURL:    base,
        APIKey:     key,
        HTTPClient: &http.Client{Timeout: 10 * time.Second},
    }
}

// AvailableSession is one bookable session on a given date.
type AvailableSession struct {
    ID             string  `json:"id"`
    Time           string  `json:"time"`
    AvailableSeats int     `json:"availableSeats"`
    Price          float64 `json:"price"`
}

// sessionPrice is the provider-side per-session price quoted on the
// availability listing.
const sessionPrice = 129.99

// AvailableSessions returns the sessions bookable on the given date.
// The venue runs evening shows on Wednesday, Friday and Saturday
// (6:00 PM – 9:00 PM) and an earlier show on Sunday (5:00 PM – 8:00 PM);
// other days have no sessions. Seat counts are derived from the date so
// repeated queries agree with each other.
func (c *Client) AvailableSessions(date string) ([]AvailableSession, error) {
    d, err := time.Parse("2006-01-02", date)
    if err != nil {
        return nil, fmt.Errorf("invalid date %q: %w", date, err)
    }
    var sessions []AvailableSession
    switch d.Weekday() {
    case time.Wednesday, time.Friday, time.Saturday:
        sessions = append(sessions, AvailableSession{
            ID:             fmt.Sprintf("session-%s-evening", date),
            Time:           "6:00 PM - 9:00 PM",
            AvailableSeats: seatsFor(date),
            Price:          sessionPrice,
        })
    case time.Sunday:
        sessions = append(sessions, AvailableSession{
            ID:             fmt.Sprintf("session-%s-evening", date),
            Time:           "5:00 PM - 8:00 PM",
            AvailableSeats: seatsFor(date),
            Price:          sessionPrice,
        })
    }
    return sessions, nil
}

// seatsFor maps a date string onto 10..59 remaining seats.
func seatsFor(date string) int {
    sum := 0
    for _, b := range []byte(date) {
        sum += int(b)
    }
    return 10 + sum%50
}

// NewBookingReference fabricates a confirmation reference in the
// provider's format: "ALI" followed by six digits.
func NewBookingReference() string {
    return fmt.Sprintf("ALI%06d", 100000+rand.Intn(900000))
}
