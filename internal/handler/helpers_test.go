package handler

import (
    "context"
    "encoding/json"
    "errors"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/aliiliau/luau-booking/internal/model"
    "github.com/aliiliau/luau-booking/internal/queue"
)

// doJSON sends a JSON request through the echo instance and returns
// the recorded response.
func doJSON(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(method, target, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    for k, v := range headers {
        req.Header.Set(k, v)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

// decodeBody unmarshals a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
    t.Helper()
    var out map[string]any
    if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
        t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
    }
    return out
}

// errBroker simulates an unreachable broker in publish failures.
var errBroker = errors.New("broker down")

// fakePublisher records published events and can be told to fail.
type fakePublisher struct {
    contact    []queue.ContactMessageEvent
    newsletter []queue.NewsletterSignupEvent
    bookings   []queue.BookingConfirmedEvent
    err        error
}

func (f *fakePublisher) PublishContactMessage(ctx context.Context, ev queue.ContactMessageEvent) error {
    f.contact = append(f.contact, ev)
    return f.err
}

func (f *fakePublisher) PublishNewsletterSignup(ctx context.Context, ev queue.NewsletterSignupEvent) error {
    f.newsletter = append(f.newsletter, ev)
    return f.err
}

func (f *fakePublisher) PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error {
    f.bookings = append(f.bookings, ev)
    return f.err
}

// fakeSnapshotPublisher records snapshot refreshes from the admin edge.
type fakeSnapshotPublisher struct {
    sets      []model.TicketType
    published []model.TicketType
}

func (f *fakeSnapshotPublisher) Set(ctx context.Context, t model.TicketType) {
    f.sets = append(f.sets, t)
}

func (f *fakeSnapshotPublisher) Publish(ctx context.Context, t model.TicketType) {
    f.published = append(f.published, t)
}
