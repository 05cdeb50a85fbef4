package model

// TicketType represents a purchasable ticket category for the venue.
// Ticket types are created and maintained through the admin dashboard
// and surfaced on the storefront when active.  The `order` field only
// controls sorting among active tickets; the lowest ordered active
// ticket is the one the storefront treats as the current offer.
type TicketType struct {
    ID          string  `json:"id"`          // opaque identifier assigned at creation (timestamp-derived)
    Name        string  `json:"name"`        // display label shown to visitors
    Description string  `json:"description"` // what the ticket includes
    Price       float64 `json:"price"`       // non-negative amount in currency units
    Order       int     `json:"order"`       // sort position among active tickets; not unique
    IsActive    bool    `json:"isActive"`    // whether the ticket is visible on the storefront
}

// TicketUpdate carries a partial update for a ticket type.  Every
// field is optional; nil fields are left untouched when the update is
// merged onto the stored record.
type TicketUpdate struct {
    Name        *string  `json:"name,omitempty"`
    Description *string  `json:"description,omitempty"`
    Price       *float64 `json:"price,omitempty"`
    Order       *int     `json:"order,omitempty"`
    IsActive    *bool    `json:"isActive,omitempty"`
}

// FallbackTicket is returned by the public "active ticket" lookup when
// no stored ticket is active.  The storefront always has something to
// display even with an empty or unreachable store.
var FallbackTicket = TicketType{
    ID:          "default",
    Name:        "General Admission",
    Description: "Standard entry ticket",
    Price:       60,
    Order:       1,
    IsActive:    true,
}

// DefaultPrice is the last-resort price the storefront shows when both
// the snapshot cache and the ticket store are unavailable.
const DefaultPrice float64 = 60
