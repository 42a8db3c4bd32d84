package session

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Middleware returns a Fiber middleware that validates the session cookie.
// On success it sets the user id into c.Locals("userId"); otherwise the
// request is rejected before any collaborator is invoked.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "user not logged in"})
		}
		userID, err := m.Verify(tokenStr)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired session"})
		}
		c.Locals("userId", userID)
		return c.Next()
	}
}
