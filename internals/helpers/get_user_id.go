package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID reads the user id the auth middleware put in Locals.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID format")
	}
	return id, nil
}

// GetUserRole returns the role claim hydrated by the auth middleware
// ("user" when absent).
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok && strings.TrimSpace(v) != "" {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return "user"
}
