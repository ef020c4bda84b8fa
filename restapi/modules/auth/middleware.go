package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abhid/portfolio-backend/internal/session"
)

// RequireAuth validates the signed session cookie against the server-side
// session store and blocks requests without an authenticated session.
func RequireAuth(sessions session.Store, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := session.Verify(c.Cookies(session.CookieName), secret)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		sess, ok := sessions.Get(id)
		if !ok || !sess.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals("username", sess.Username)
		c.Locals("session_id", sess.ID)
		return c.Next()
	}
}
