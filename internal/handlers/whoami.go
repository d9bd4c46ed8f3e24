package handlers

import "github.com/gofiber/fiber/v2"

// WhoamiHandler echoes the resolved identity for debugging auth setups.
func WhoamiHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	}
}
