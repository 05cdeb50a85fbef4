package pricing

import (
    "context"
    "sync"
    "time"

    "github.com/aliiliau/luau-booking/internal/model"
)

// memoTTL bounds how long a resolved or pushed ticket is served from
// memory before the resolution chain runs again.  Without the bound a
// lost pub/sub message would leave the in-memory value stale forever;
// with it, an admin change that only reached the snapshot is picked up
// within one memo window.  Matches the snapshot entry lifetime.
const memoTTL = 5 * time.Minute

// TicketReader is the slice of the ticket repository the resolver
// needs: the active tickets in display order.
type TicketReader interface {
    ListActive() []model.TicketType
}

// Resolver determines the current ticket price to display.  Resolution
// is three ordered one-shot attempts, first success wins:
//
//  1. the persisted snapshot (admin-written or a previous read-through),
//  2. the primary active ticket from the store, which also refreshes
//     the snapshot for the next resolution,
//  3. the fixed default price.
//
// A resolver additionally holds the last known ticket in memory;
// ApplyUpdate replaces it when the admin edge announces a change, so
// Price can answer without touching the snapshot or the store again.
type Resolver struct {
    snapshot SnapshotStore // may be nil when Redis is unavailable
    tickets  TicketReader  // may be nil in degraded setups

    mu        sync.RWMutex
    current   *model.TicketType // last resolved or pushed ticket
    currentAt time.Time         // when current was last replaced
}

// NewResolver constructs a Resolver.  Either dependency may be nil;
// resolution simply skips the corresponding attempt.
func NewResolver(snapshot SnapshotStore, tickets TicketReader) *Resolver {
    return &Resolver{snapshot: snapshot, tickets: tickets}
}

// Resolve walks the fallback chain and returns the price to display.
// Each attempt is one-shot; there are no retries.
func (r *Resolver) Resolve(ctx context.Context) float64 {
    if r.snapshot != nil {
        if t, ok := r.snapshot.Get(ctx); ok {
            r.setCurrent(t)
            return t.Price
        }
    }
    if r.tickets != nil {
        t := model.FallbackTicket
        if active := r.tickets.ListActive(); len(active) > 0 {
            t = active[0]
        }
        r.setCurrent(t)
        if r.snapshot != nil {
            r.snapshot.Set(ctx, t)
        }
        return t.Price
    }
    return model.DefaultPrice
}

// Price returns the in-memory value while it is fresh and otherwise
// runs a full resolution.  This is what the price endpoint serves.
// The memo expires after memoTTL so a snapshot rewritten by the admin
// edge is picked up even when the accompanying pub/sub message never
// arrived.
func (r *Resolver) Price(ctx context.Context) float64 {
    r.mu.RLock()
    cur, at := r.current, r.currentAt
    r.mu.RUnlock()
    if cur != nil && time.Since(at) < memoTTL {
        return cur.Price
    }
    return r.Resolve(ctx)
}

// Current returns the last known ticket, if any.
func (r *Resolver) Current() (model.TicketType, bool) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    if r.current == nil {
        return model.TicketType{}, false
    }
    return *r.current, true
}

// ApplyUpdate replaces the in-memory ticket with one pushed over the
// update channel.  No re-fetch happens; the push carries the full
// record.
func (r *Resolver) ApplyUpdate(t model.TicketType) {
    r.setCurrent(t)
}

func (r *Resolver) setCurrent(t model.TicketType) {
    r.mu.Lock()
    r.current = &t
    r.currentAt = time.Now()
    r.mu.Unlock()
}
