package repository // repository implements the file-backed data access layer

import (
    "bytes"
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "sort"
    "strconv"
    "sync"
    "time"

    "github.com/natefinch/atomic"

    "github.com/aliiliau/luau-booking/internal/model"
)

// seedTickets are written to the backing file the first time the store
// is touched and no file exists yet.  Only the first entry is active;
// the others exist so the admin dashboard has something to edit.
var seedTickets = []model.TicketType{
    {
        ID:          "1",
        Name:        "General Admission",
        Description: "Includes full Pacific Island buffet dinner, welcome drink, and cultural performance",
        Price:       60,
        Order:       1,
        IsActive:    true,
    },
    {
        ID:          "2",
        Name:        "Premium Experience",
        Description: "Includes preferred seating, full Pacific Island buffet dinner, two drinks, and cultural performance",
        Price:       60,
        Order:       2,
        IsActive:    false,
    },
    {
        ID:          "3",
        Name:        "VIP Royal Experience",
        Description: "Includes front-row seating, full Pacific Island buffet dinner, open bar, traditional greeting, souvenir photo, and cultural performance",
        Price:       60,
        Order:       3,
        IsActive:    false,
    },
}

// TicketRepo persists ticket types as a single JSON array file.  Every
// mutation reads the whole collection, modifies it in memory and
// rewrites the file in full via an atomic rename.  The mutex only
// serializes callers within this process; a second process writing the
// same file still races and the last full-file write wins.  That is an
// accepted limitation: the deployment has a single administrative
// actor, and the public path only ever reads.
type TicketRepo struct {
    path string     // absolute or working-directory-relative path to tickets.json
    mu   sync.Mutex // serializes in-process mutations
}

// NewTicketRepo constructs a TicketRepo storing its data at
// dataDir/tickets.json.  The directory and file are created lazily on
// first access.
func NewTicketRepo(dataDir string) *TicketRepo {
    return &TicketRepo{path: filepath.Join(dataDir, "tickets.json")}
}

// init ensures the data directory and backing file exist, seeding the
// file with the default ticket types when it is absent.
func (r *TicketRepo) init() error {
    if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
        return fmt.Errorf("create data dir: %w", err)
    }
    if _, err := os.Stat(r.path); os.IsNotExist(err) {
        return r.write(seedTickets)
    }
    return nil
}

// read loads the full collection from disk.  The caller must hold the
// mutex when the result will be used for a mutation.
func (r *TicketRepo) read() ([]model.TicketType, error) {
    if err := r.init(); err != nil {
        return nil, err
    }
    data, err := os.ReadFile(r.path)
    if err != nil {
        return nil, fmt.Errorf("read tickets file: %w", err)
    }
    var tickets []model.TicketType
    if err := json.Unmarshal(data, &tickets); err != nil {
        return nil, fmt.Errorf("parse tickets file: %w", err)
    }
    return tickets, nil
}

// write rewrites the backing file with the given collection.  The file
// is written pretty-printed, matching the layout an operator would
// expect when inspecting it by hand, and replaced atomically so a
// crash mid-write never leaves a truncated file behind.
func (r *TicketRepo) write(tickets []model.TicketType) error {
    data, err := json.MarshalIndent(tickets, "", "  ")
    if err != nil {
        return fmt.Errorf("encode tickets: %w", err)
    }
    if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
        return fmt.Errorf("write tickets file: %w", err)
    }
    return nil
}

// List returns every stored ticket in persisted order.  When the file
// cannot be read or parsed after initialization, the seed set is
// returned so the public read path keeps working; mutating operations
// surface I/O errors instead.
func (r *TicketRepo) List() []model.TicketType {
    tickets, err := r.read()
    if err != nil {
        out := make([]model.TicketType, len(seedTickets))
        copy(out, seedTickets)
        return out
    }
    return tickets
}

// ListActive returns only the active tickets, sorted ascending by
// their order field.  The sort is stable so tickets sharing an order
// value keep their relative insertion order.
func (r *TicketRepo) ListActive() []model.TicketType {
    var active []model.TicketType
    for _, t := range r.List() {
        if t.IsActive {
            active = append(active, t)
        }
    }
    sort.SliceStable(active, func(i, j int) bool { return active[i].Order < active[j].Order })
    return active
}

// PrimaryActive returns the lowest-ordered active ticket, the one the
// storefront treats as the current offer, or the documented fallback
// record when no ticket is active.
func (r *TicketRepo) PrimaryActive() model.TicketType {
    if active := r.ListActive(); len(active) > 0 {
        return active[0]
    }
    return model.FallbackTicket
}

// GetByID returns the ticket with the given id or ErrTicketNotFound.
func (r *TicketRepo) GetByID(id string) (model.TicketType, error) {
    for _, t := range r.List() {
        if t.ID == id {
            return t, nil
        }
    }
    return model.TicketType{}, ErrTicketNotFound
}

// Create assigns a new id to the given ticket, appends it to the
// collection and rewrites the file.  The id is the creation time in
// unix milliseconds; when two creates land in the same millisecond the
// id is bumped until unique within the stored collection.  No field
// validation happens here; that is the caller's responsibility.
func (r *TicketRepo) Create(t model.TicketType) (model.TicketType, error) {
    r.mu.Lock()
    defer r.mu.Unlock()

    tickets, err := r.read()
    if err != nil {
        // Fall back to the seed set like the read path does so a
        // damaged file does not block the admin from saving.
        tickets = make([]model.TicketType, len(seedTickets))
        copy(tickets, seedTickets)
    }

    ms := time.Now().UnixMilli()
    id := strconv.FormatInt(ms, 10)
    for hasID(tickets, id) {
        ms++
        id = strconv.FormatInt(ms, 10)
    }
    t.ID = id

    tickets = append(tickets, t)
    if err := r.write(tickets); err != nil {
        return model.TicketType{}, err
    }
    return t, nil
}

// Update merges the non-nil fields of the partial payload onto the
// stored ticket and rewrites the file.  Returns ErrTicketNotFound when
// no ticket matches the id.  Note that no validation is applied to the
// merged fields; this mirrors the admin edge, which only validates on
// create.
func (r *TicketRepo) Update(id string, upd model.TicketUpdate) (model.TicketType, error) {
    r.mu.Lock()
    defer r.mu.Unlock()

    tickets, err := r.read()
    if err != nil {
        return model.TicketType{}, err
    }
    for i := range tickets {
        if tickets[i].ID != id {
            continue
        }
        if upd.Name != nil {
            tickets[i].Name = *upd.Name
        }
        if upd.Description != nil {
            tickets[i].Description = *upd.Description
        }
        if upd.Price != nil {
            tickets[i].Price = *upd.Price
        }
        if upd.Order != nil {
            tickets[i].Order = *upd.Order
        }
        if upd.IsActive != nil {
            tickets[i].IsActive = *upd.IsActive
        }
        if err := r.write(tickets); err != nil {
            return model.TicketType{}, err
        }
        return tickets[i], nil
    }
    return model.TicketType{}, ErrTicketNotFound
}

// Delete removes the ticket with the given id and reports whether a
// ticket was actually removed.  The stored collection is untouched
// when the id does not exist.
func (r *TicketRepo) Delete(id string) (bool, error) {
    r.mu.Lock()
    defer r.mu.Unlock()

    tickets, err := r.read()
    if err != nil {
        return false, err
    }
    kept := tickets[:0:0]
    for _, t := range tickets {
        if t.ID != id {
            kept = append(kept, t)
        }
    }
    if len(kept) == len(tickets) {
        return false, nil
    }
    if err := r.write(kept); err != nil {
        return false, err
    }
    return true, nil
}

// hasID reports whether any ticket in the collection carries the id.
func hasID(tickets []model.TicketType, id string) bool {
    for _, t := range tickets {
        if t.ID == id {
            return true
        }
    }
    return false
}
