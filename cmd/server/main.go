package main // Entry point package

import (
    "context" // Context for the pub/sub subscriber lifetime
    "log"     // Logging library
    "time"    // Snapshot TTL

    "github.com/joho/godotenv"    // Loads .env files in development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/aliiliau/luau-booking/internal/config"     // Internal config loader
    "github.com/aliiliau/luau-booking/internal/handler"    // HTTP handlers
    "github.com/aliiliau/luau-booking/internal/pricing"    // Price resolver and snapshot cache
    "github.com/aliiliau/luau-booking/internal/queue"      // Notification consumer
    "github.com/aliiliau/luau-booking/internal/repository" // File-backed stores
    "github.com/aliiliau/luau-booking/internal/router"     // Internal router setup
    queue_publisher "github.com/aliiliau/luau-booking/internal/service"
    "github.com/aliiliau/luau-booking/internal/trybooking" // Booking provider client
)

func main() {
    _ = godotenv.Load() // Load .env when present; absence is fine in production
    cfg := config.Load()

    // File-backed stores: the ticket collection and the admin secret.
    tickets := repository.NewTicketRepo(cfg.DataDir)
    guard := repository.NewAdminAccessRepo(cfg.DataDir)

    // Redis backs the price snapshot, its update channel, the response
    // cache and the rate limiter.  A nil client disables all four and
    // the service keeps running off the JSON file alone.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable; snapshot, cache and rate limiting disabled")
    }
    snapshot := pricing.NewRedisSnapshot(rdb, 5*time.Minute)
    resolver := pricing.NewResolver(snapshot, tickets)
    snapshot.Listen(context.Background(), resolver.ApplyUpdate)

    // Outbound notifications: publisher used by the form and booking
    // edges, consumer relaying queued events into the notification log.
    publisher := queue_publisher.NewAMQPPublisher()
    go func() {
        if err := queue.StartNotificationConsumer(); err != nil {
            log.Printf("notification consumer stopped: %v", err)
        }
    }()

    provider := trybooking.NewClient()

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterPublic(e,
        handler.NewPublicHandler(tickets, resolver),
        handler.NewContactHandler(publisher),
        handler.NewBookingHandler(provider, publisher),
        handler.NewTryBookingHandler(provider),
        rdb,
    )
    router.RegisterAdmin(e, handler.NewAdminHandler(tickets, snapshot, cfg.AdminPath), guard)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
