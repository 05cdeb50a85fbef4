// Package pricing implements the storefront's current-price resolution:
// a snapshot cache consulted first, the ticket store as the authority
// behind it, and a fixed fallback when both are unavailable.  A Redis
// pub/sub channel pushes admin-side price changes to running resolvers
// so the storefront updates without re-fetching.
package pricing

import (
    "context"
    "encoding/json"
    "log"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/aliiliau/luau-booking/internal/model"
)

const (
    // SnapshotKey is the Redis key holding the JSON-encoded active
    // ticket last written by the admin edge or a resolver read-through.
    SnapshotKey = "activeTicket"

    // UpdateChannel is the pub/sub channel on which the admin edge
    // announces the new active ticket after a successful save.
    UpdateChannel = "tickets.active"
)

// SnapshotStore abstracts the persisted active-ticket snapshot so the
// resolver can be exercised in tests without a Redis server.
type SnapshotStore interface {
    // Get returns the stored snapshot, reporting false when the
    // snapshot is absent or does not parse.
    Get(ctx context.Context) (model.TicketType, bool)
    // Set stores the snapshot, best-effort.
    Set(ctx context.Context, t model.TicketType)
}

// RedisSnapshot stores the active-ticket snapshot under SnapshotKey and
// relays updates over UpdateChannel.  A nil client disables every
// operation, mirroring how the rest of the service degrades when Redis
// is unreachable.  Entries carry a TTL so the staleness of the snapshot
// relative to the file store is bounded rather than indefinite.
type RedisSnapshot struct {
    rdb *redis.Client
    ttl time.Duration
}

// NewRedisSnapshot constructs a RedisSnapshot.  A ttl of zero disables
// expiry; the caller normally passes a few minutes.
func NewRedisSnapshot(rdb *redis.Client, ttl time.Duration) *RedisSnapshot {
    return &RedisSnapshot{rdb: rdb, ttl: ttl}
}

// Get implements SnapshotStore.  Any Redis error or parse failure is
// treated as an absent snapshot so the resolver falls through to the
// store.
func (s *RedisSnapshot) Get(ctx context.Context) (model.TicketType, bool) {
    if s == nil || s.rdb == nil {
        return model.TicketType{}, false
    }
    data, err := s.rdb.Get(ctx, SnapshotKey).Bytes()
    if err != nil {
        return model.TicketType{}, false
    }
    var t model.TicketType
    if err := json.Unmarshal(data, &t); err != nil {
        return model.TicketType{}, false
    }
    return t, true
}

// Set implements SnapshotStore.  Failures are logged and swallowed; the
// snapshot is an acceleration structure, not a source of truth.
func (s *RedisSnapshot) Set(ctx context.Context, t model.TicketType) {
    if s == nil || s.rdb == nil {
        return
    }
    data, err := json.Marshal(t)
    if err != nil {
        return
    }
    if err := s.rdb.Set(ctx, SnapshotKey, data, s.ttl).Err(); err != nil {
        log.Printf("pricing: snapshot set failed: %v", err)
    }
}

// Publish announces a new active ticket on UpdateChannel so every
// subscribed resolver picks it up immediately.  Best-effort.
func (s *RedisSnapshot) Publish(ctx context.Context, t model.TicketType) {
    if s == nil || s.rdb == nil {
        return
    }
    data, err := json.Marshal(t)
    if err != nil {
        return
    }
    if err := s.rdb.Publish(ctx, UpdateChannel, data).Err(); err != nil {
        log.Printf("pricing: publish update failed: %v", err)
    }
}

// Listen subscribes to UpdateChannel and invokes fn for every ticket
// published there.  It runs until the context is cancelled and returns
// immediately when no Redis client is configured.
func (s *RedisSnapshot) Listen(ctx context.Context, fn func(model.TicketType)) {
    if s == nil || s.rdb == nil {
        return
    }
    sub := s.rdb.Subscribe(ctx, UpdateChannel)
    go func() {
        defer func() { _ = sub.Close() }()
        for {
            select {
            case <-ctx.Done():
                return
            case msg, ok := <-sub.Channel():
                if !ok {
                    return
                }
                var t model.TicketType
                if err := json.Unmarshal([]byte(msg.Payload), &t); err != nil {
                    log.Printf("pricing: bad update payload: %v", err)
                    continue
                }
                fn(t)
            }
        }
    }()
}
