package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/photoshare/photoshare-backend/internal/models"
	"github.com/photoshare/photoshare-backend/pkg/session"
)

// SessionAuth blocks any route registered after it unless the session cookie
// resolves to a live session. Routes that allow anonymous access (login,
// logout, registration, diagnostics, static images) are registered before
// this middleware.
func SessionAuth(sessions session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not logged in"))
		}

		userID, err := sessions.Get(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not logged in"))
		}

		c.Locals("userID", userID)
		c.Locals("sessionToken", token)

		return c.Next()
	}
}
