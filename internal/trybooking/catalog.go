package trybooking

// This file holds the provider-side catalog the simulation serves: the
// per-booking ticket options and the event/session listing the widget
// proxy endpoints expose.

// TicketOption is one of the provider's bookable ticket categories.
// These are distinct from the storefront's TicketType records: they
// belong to the provider's catalog, not to the admin-managed store.
type TicketOption struct {
    ID          string  `json:"id"`
    Name        string  `json:"name"`
    Price       float64 `json:"price"`
    Description string  `json:"description"`
}

// ticketOptions is the provider catalog keyed by option id.
var ticketOptions = map[string]TicketOption{
    "standard": {
        ID:          "standard",
        Name:        "Standard Experience",
        Price:       60.00,
        Description: "Full luau experience with dinner and show",
    },
    "vip": {
        ID:          "vip",
        Name:        "VIP Experience",
        Price:       90.00,
        Description: "Premium seating, welcome drink, and photo opportunity with performers",
    },
    "family": {
        ID:          "family",
        Name:        "Family Package",
        Price:       180.00,
        Description: "2 adults and 2 children (ages 5-12)",
    },
}

// KnownTicketOption reports whether the id names a catalog option.
func KnownTicketOption(id string) bool {
    _, ok := ticketOptions[id]
    return ok
}

// TicketOptionByID resolves a ticket option, defaulting to standard
// for unknown or empty ids. Bookings therefore never fail on a bad
// ticket type; they fall back to the base offering.
func TicketOptionByID(id string) TicketOption {
    if opt, ok := ticketOptions[id]; ok {
        return opt
    }
    return ticketOptions["standard"]
}

// Event is a provider event as returned by the catalog endpoints.
type Event struct {
    EventID     int       `json:"eventId"`
    EventCode   string    `json:"eventCode"`
    Name        string    `json:"name"`
    Description string    `json:"description"`
    Venue       string    `json:"venue"`
    TimeZone    string    `json:"timeZone"`
    IsPublic    bool      `json:"isPublic"`
    IsOpen      bool      `json:"isOpen"`
    BookingURL  string    `json:"bookingUrl"`
    SessionList []Session `json:"sessionList"`
}

// Session is one scheduled occurrence of an event.
type Session struct {
    ID                  int    `json:"id"`
    EventStartDate      string `json:"eventStartDate"`
    EventEndDate        string `json:"eventEndDate"`
    SessionStatus       string `json:"sessionStatus"`
    SessionCapacity     int    `json:"sessionCapacity"`
    SessionAvailability int    `json:"sessionAvailability"`
    SessionBookingURL   string `json:"sessionBookingUrl"`
}

// AvailabilityStatus buckets a session's remaining capacity for the
// storefront badge: sold out at zero, limited under 20% of capacity,
// available otherwise.
type AvailabilityStatus string

const (
    StatusAvailable AvailabilityStatus = "Available"
    StatusLimited   AvailabilityStatus = "Limited"
    StatusSoldOut   AvailabilityStatus = "Sold Out"
)

// SessionStatus derives the availability badge for a session.
func SessionStatus(s Session) AvailabilityStatus {
    switch {
    case s.SessionAvailability <= 0:
        return StatusSoldOut
    case float64(s.SessionAvailability) < float64(s.SessionCapacity)*0.2:
        return StatusLimited
    default:
        return StatusAvailable
    }
}

// catalogEvents is the simulated event listing served by the proxy
// endpoints until live provider credentials are configured.
var catalogEvents = []Event{
    {
        EventID:     1001,
        EventCode:   "ALIILUAU",
        Name:        "AliiLuau Polynesian Dinner Show",
        Description: "An evening of Pacific Island cuisine and cultural performance",
        Venue:       "AliiLuau Gardens",
        TimeZone:    "Pacific/Honolulu",
        IsPublic:    true,
        IsOpen:      true,
        BookingURL:  "https://www.trybooking.com/events/aliiluau",
        SessionList: []Session{
            {
                ID:                  50001,
                EventStartDate:      "2025-10-03T18:00:00",
                EventEndDate:        "2025-10-03T21:00:00",
                SessionStatus:       "Open",
                SessionCapacity:     120,
                SessionAvailability: 84,
                SessionBookingURL:   "https://www.trybooking.com/sessions/50001",
            },
            {
                ID:                  50002,
                EventStartDate:      "2025-10-05T17:00:00",
                EventEndDate:        "2025-10-05T20:00:00",
                SessionStatus:       "Open",
                SessionCapacity:     120,
                SessionAvailability: 17,
                SessionBookingURL:   "https://www.trybooking.com/sessions/50002",
            },
        },
    },
}

// Events returns the provider's event catalog.
func (c *Client) Events() ([]Event, error) {
    out := make([]Event, len(catalogEvents))
    copy(out, catalogEvents)
    return out, nil
}

// EventByID returns the event with the given id, or false when the
// provider knows no such event.
func (c *Client) EventByID(eventID int) (Event, bool, error) {
    for _, ev := range catalogEvents {
        if ev.EventID == eventID {
            return ev, true, nil
        }
    }
    return Event{}, false, nil
}

// SessionByID returns the session with the given id across all events,
// or false when it does not exist.
func (c *Client) SessionByID(sessionID int) (Session, bool, error) {
    for _, ev := range catalogEvents {
        for _, s := range ev.SessionList {
            if s.ID == sessionID {
                return s, true, nil
            }
        }
    }
    return Session{}, false, nil
}
