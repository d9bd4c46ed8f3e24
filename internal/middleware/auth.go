package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"eventplanner/internal/session"
)

// Auth resolves a bearer token into Locals("user_id") / Locals("role").
// Requests without an Authorization header pass through anonymous;
// RequireAuth decides whether that is acceptable per route.
func Auth(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		ident, err := sessions.Verify(c.Context(), strings.TrimSpace(auth[7:]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", ident.UID)
		c.Locals("role", ident.Role)
		c.Locals("identity", ident)
		return c.Next()
	}
}
