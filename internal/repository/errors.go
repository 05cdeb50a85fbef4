// Package repository defines error types that are reused across the
// data access layer. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrTicketNotFound indicates that an operation addressed a
// ticket id that does not exist in the backing file, which handlers
// translate into an HTTP 404 response.
package repository

import "errors"

// ErrTicketNotFound is returned when a lookup, update or delete
// addresses a ticket id that is not present in the store. Handlers
// should translate this into an HTTP 404 response.
var ErrTicketNotFound = errors.New("ticket not found")
