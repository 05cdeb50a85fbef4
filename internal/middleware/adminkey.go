package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/aliiliau/luau-booking/internal/repository"
)

// AdminKey returns an Echo middleware that validates a bearer
// credential against the configured admin secret before any handler
// runs.  The check is a direct equality comparison against the secret
// in data/admin-access.json; there is no hashing, expiry or rate
// limiting on the credential itself.  The denial body is identical no
// matter what was wrong with the header, so a probing caller learns
// nothing about whether a credential was missing, malformed or merely
// incorrect.  On denial the wrapped handler never executes, so no
// store access happens.
func AdminKey(guard *repository.AdminAccessRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header should
            // start with "Bearer " followed by the admin secret.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }
            // Remove the "Bearer " prefix to obtain the raw credential.
            raw := strings.TrimPrefix(auth, "Bearer ")
            if !guard.VerifySecret(raw) {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }
            // Credential accepted; run the handler.
            return next(c)
        }
    }
}
