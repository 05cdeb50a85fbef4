package handler // handler package contains the contact and newsletter form edges

import (
    "log"
    "net/http"
    "regexp"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/aliiliau/luau-booking/internal/queue"
    queue_publisher "github.com/aliiliau/luau-booking/internal/service"
)

// emailPattern is the simple shape check applied to submitted email
// addresses: something, an @, something, a dot, something.  Anything
// beyond that is left to the mail system.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler serves the contact form and newsletter signup.  Both
// validate their input and then hand the submission to the outbound
// notification queue.  Delivery is best-effort: a broker failure is
// logged and reported in the response's delivered flag, but the
// submission itself still succeeds from the visitor's perspective.
type ContactHandler struct {
    Publisher queue_publisher.Publisher
}

// NewContactHandler constructs a ContactHandler and panics when the
// publisher is missing.
func NewContactHandler(pub queue_publisher.Publisher) *ContactHandler {
    if pub == nil {
        panic("nil publisher passed to NewContactHandler")
    }
    return &ContactHandler{Publisher: pub}
}

// contactRequest is the POST /v1/contact payload.
type contactRequest struct {
    Name    string `json:"name"`
    Email   string `json:"email"`
    Phone   string `json:"phone"`
    Message string `json:"message"`
}

// Contact handles POST /v1/contact.  Name, email and message are
// required; the email must match the shape check.  Validation happens
// before any publish attempt, so a rejected payload never reaches the
// broker.
func (h *ContactHandler) Contact(c echo.Context) error {
    var body contactRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    message := strings.TrimSpace(body.Message)
    if name == "" || body.Email == "" || message == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Name, email, and message are required"})
    }
    if !emailPattern.MatchString(body.Email) {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Please provide a valid email address"})
    }

    ev := queue.ContactMessageEvent{
        Name:       name,
        Email:      body.Email,
        Phone:      strings.TrimSpace(body.Phone),
        Message:    message,
        ReceivedAt: time.Now().UTC().Format(time.RFC3339),
    }
    delivered := true
    if err := h.Publisher.PublishContactMessage(c.Request().Context(), ev); err != nil {
        log.Printf("contact: notification publish failed: %v", err)
        delivered = false
    }
    return c.JSON(http.StatusOK, echo.Map{
        "success":   true,
        "message":   "Your message has been sent! We'll get back to you soon.",
        "delivered": delivered,
    })
}

// newsletterRequest is the POST /v1/newsletter payload.
type newsletterRequest struct {
    Email string `json:"email"`
}

// Newsletter handles POST /v1/newsletter.  Only the email is required;
// the same shape check and best-effort delivery policy apply as for
// the contact form.
func (h *ContactHandler) Newsletter(c echo.Context) error {
    var body newsletterRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
    }
    if body.Email == "" || !emailPattern.MatchString(body.Email) {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Please provide a valid email address"})
    }

    ev := queue.NewsletterSignupEvent{
        Email:      body.Email,
        ReceivedAt: time.Now().UTC().Format(time.RFC3339),
    }
    delivered := true
    if err := h.Publisher.PublishNewsletterSignup(c.Request().Context(), ev); err != nil {
        log.Printf("newsletter: notification publish failed: %v", err)
        delivered = false
    }
    return c.JSON(http.StatusOK, echo.Map{
        "success":   true,
        "message":   "Thank you for subscribing to our newsletter!",
        "delivered": delivered,
    })
}
