package authctx

import (
	"github.com/gofiber/fiber/v2"

	"eventplanner/internal/session"
)

// UserID pulls the authenticated principal's id out of Locals.
func UserID(c *fiber.Ctx) (string, error) {
	uid, ok := c.Locals("user_id").(string)
	if !ok || uid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return uid, nil
}

// Identity returns the full verified identity for the request.
func Identity(c *fiber.Ctx) (session.Identity, error) {
	ident, ok := c.Locals("identity").(session.Identity)
	if !ok {
		return session.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return ident, nil
}
