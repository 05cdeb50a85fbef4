package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing
    "github.com/redis/go-redis/v9"

    "github.com/aliiliau/luau-booking/internal/config"
    "github.com/aliiliau/luau-booking/internal/handler"    // import the handlers that implement business logic
    "github.com/aliiliau/luau-booking/internal/middleware" // import middleware for admin credentials, caching and rate limiting
    "github.com/aliiliau/luau-booking/internal/repository"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health
// check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated storefront endpoints:
// the active-ticket views, the resolved price, the contact and
// newsletter forms, and the booking edges.  Read-only routes go
// through the Redis response cache; the form and booking submissions
// go through the rate limiter instead.  Both middlewares degrade to
// pass-throughs when Redis is unavailable.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, ct *handler.ContactHandler, b *handler.BookingHandler, tb *handler.TryBookingHandler, rdb *redis.Client) {
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
    limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    // Public ticket query edge: active tickets and the current offer.
    e.GET("/v1/tickets", p.GetActiveTickets, cache)
    e.GET("/v1/tickets/active", p.GetActiveTicket, cache)
    // Resolved current price for the storefront header.  Deliberately
    // not response-cached: the resolver already has its own snapshot
    // layer and must reflect pushed updates immediately.
    e.GET("/v1/price", p.GetPrice)

    // Contact and newsletter intake.
    e.POST("/v1/contact", ct.Contact, limit)
    e.POST("/v1/newsletter", ct.Newsletter, limit)

    // Booking availability and submission.
    e.GET("/v1/booking", b.GetAvailability, cache)
    e.POST("/v1/booking", b.CreateBooking, limit)

    // Booking-provider catalog proxy for the storefront widget.
    e.GET("/v1/trybooking/events", tb.GetEvents, cache)
    e.GET("/v1/trybooking/events/:eventId", tb.GetEvent, cache)
    e.GET("/v1/trybooking/sessions/:sessionId", tb.GetSession, cache)
}

// RegisterAdmin registers the credential-gated ticket management edge
// and the dashboard path verification endpoint.  Every route in the
// gated group runs the AdminKey middleware before its handler, so a
// bad credential never reaches the store.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, guard *repository.AdminAccessRepo) {
    // Path verification is outside the gated group: the dashboard asks
    // it whether a candidate URL segment is the configured one before
    // any credential exists.
    e.POST("/v1/admin/verify", a.Verify)

    g := e.Group("/v1/admin")
    g.Use(middleware.AdminKey(guard))
    g.GET("/tickets", a.ListTickets)
    g.POST("/tickets", a.CreateTicket)
    g.GET("/tickets/:id", a.GetTicket)
    g.PUT("/tickets/:id", a.UpdateTicket)
    g.DELETE("/tickets/:id", a.DeleteTicket)
}
