package repository

import (
    "encoding/json"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/aliiliau/luau-booking/internal/model"
)

// writeTickets replaces the backing file with the given collection so
// tests can start from a known state instead of the seed set.
func writeTickets(t *testing.T, dir string, tickets []model.TicketType) {
    t.Helper()
    data, err := json.MarshalIndent(tickets, "", "  ")
    require.NoError(t, err)
    require.NoError(t, os.MkdirAll(dir, 0o755))
    require.NoError(t, os.WriteFile(filepath.Join(dir, "tickets.json"), data, 0o644))
}

func TestTicketRepo_SeedsOnFirstAccess(t *testing.T) {
    dir := t.TempDir()
    repo := NewTicketRepo(dir)

    got := repo.List()
    require.Len(t, got, 3)
    require.Equal(t, "General Admission", got[0].Name)
    require.True(t, got[0].IsActive)
    require.False(t, got[1].IsActive)
    require.False(t, got[2].IsActive)

    // The seed write must have landed on disk.
    _, err := os.Stat(filepath.Join(dir, "tickets.json"))
    require.NoError(t, err)
}

func TestTicketRepo_CreateAssignsUniqueIDAndPersists(t *testing.T) {
    repo := NewTicketRepo(t.TempDir())

    first, err := repo.Create(model.TicketType{Name: "Sunset Special", Description: "Evening show", Price: 75, Order: 4, IsActive: true})
    require.NoError(t, err)
    require.NotEmpty(t, first.ID)

    // A second create in the same millisecond must still get a fresh id.
    second, err := repo.Create(model.TicketType{Name: "Keiki Ticket", Description: "Children", Price: 30, Order: 5, IsActive: true})
    require.NoError(t, err)
    require.NotEqual(t, first.ID, second.ID)

    got, err := repo.GetByID(first.ID)
    require.NoError(t, err)
    require.Equal(t, first, got)
}

func TestTicketRepo_GetByID_NotFound(t *testing.T) {
    repo := NewTicketRepo(t.TempDir())
    _, err := repo.GetByID("no-such-id")
    require.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketRepo_ListActive_FiltersAndSortsStable(t *testing.T) {
    dir := t.TempDir()
    writeTickets(t, dir, []model.TicketType{
        {ID: "a", Name: "A", Description: "d", Price: 10, Order: 3, IsActive: true},
        {ID: "b", Name: "B", Description: "d", Price: 20, Order: 1, IsActive: true},
        {ID: "c", Name: "C", Description: "d", Price: 30, Order: 2, IsActive: false},
        {ID: "d", Name: "D", Description: "d", Price: 40, Order: 1, IsActive: true},
    })
    repo := NewTicketRepo(dir)

    active := repo.ListActive()
    require.Len(t, active, 3)
    // Ascending by order; b and d share order 1 and keep insertion order.
    require.Equal(t, []string{"b", "d", "a"}, []string{active[0].ID, active[1].ID, active[2].ID})
}

func TestTicketRepo_PrimaryActive_FallbackWhenNoneActive(t *testing.T) {
    dir := t.TempDir()
    writeTickets(t, dir, []model.TicketType{
        {ID: "a", Name: "A", Description: "d", Price: 10, Order: 1, IsActive: false},
    })
    repo := NewTicketRepo(dir)

    got := repo.PrimaryActive()
    require.Equal(t, "default", got.ID)
    require.Equal(t, float64(60), got.Price)
}

func TestTicketRepo_Update_MergesPartialFields(t *testing.T) {
    dir := t.TempDir()
    writeTickets(t, dir, []model.TicketType{
        {ID: "a", Name: "A", Description: "keep me", Price: 10, Order: 2, IsActive: true},
    })
    repo := NewTicketRepo(dir)

    price := 55.5
    updated, err := repo.Update("a", model.TicketUpdate{Price: &price})
    require.NoError(t, err)
    require.Equal(t, 55.5, updated.Price)

    // Round-trip: the price changed and everything else is untouched.
    got, err := repo.GetByID("a")
    require.NoError(t, err)
    require.Equal(t, 55.5, got.Price)
    require.Equal(t, "A", got.Name)
    require.Equal(t, "keep me", got.Description)
    require.Equal(t, 2, got.Order)
    require.True(t, got.IsActive)
}

func TestTicketRepo_Update_NotFound(t *testing.T) {
    repo := NewTicketRepo(t.TempDir())
    name := "X"
    _, err := repo.Update("missing", model.TicketUpdate{Name: &name})
    require.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketRepo_Delete(t *testing.T) {
    dir := t.TempDir()
    writeTickets(t, dir, []model.TicketType{
        {ID: "a", Name: "A", Description: "d", Price: 10, Order: 1, IsActive: true},
        {ID: "b", Name: "B", Description: "d", Price: 20, Order: 2, IsActive: false},
    })
    repo := NewTicketRepo(dir)

    removed, err := repo.Delete("a")
    require.NoError(t, err)
    require.True(t, removed)
    require.Len(t, repo.List(), 1)

    // Deleting a nonexistent id reports false and changes nothing.
    removed, err = repo.Delete("a")
    require.NoError(t, err)
    require.False(t, removed)
    require.Len(t, repo.List(), 1)
}
