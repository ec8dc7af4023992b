package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	applog "chatorder/internal/log"
)

// RequireAdmin guards the admin API with the X-Admin-Token header,
// checked against the bcrypt hash of the configured token. A nil hash
// means no token was configured and the guard is a no-op.
func RequireAdmin(tokenHash []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenHash == nil {
			return c.Next()
		}
		token := c.Get("X-Admin-Token")
		if token == "" || bcrypt.CompareHashAndPassword(tokenHash, []byte(token)) != nil {
			applog.Security(c, "admin.auth.fail", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
