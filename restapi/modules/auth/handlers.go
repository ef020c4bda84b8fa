package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abhid/portfolio-backend/config"
	"github.com/abhid/portfolio-backend/internal/session"
	"github.com/abhid/portfolio-backend/model"
	"github.com/abhid/portfolio-backend/store"
)

// Login verifies the submitted credentials against the users file and sets
// the session cookie. An unknown username and a wrong password are
// indistinguishable to the caller.
func Login(st *store.Store, sessions session.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Username == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
		}

		user, err := st.FindUser(req.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}

		if !CheckPasswordHash(req.Password, user.Password) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		sess, err := sessions.Create(user.Username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}

		c.Cookie(&fiber.Cookie{
			Name:     session.CookieName,
			Value:    session.Sign(sess.ID, []byte(cfg.SessionSecret)),
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   cfg.IsProduction(),
			SameSite: "Lax",
			Path:     "/",
		})

		return c.JSON(fiber.Map{"success": true, "message": "Login successful"})
	}
}

// Logout destroys the server-side session and clears the cookie.
func Logout(sessions session.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := session.Verify(c.Cookies(session.CookieName), []byte(cfg.SessionSecret)); ok {
			if err := sessions.Destroy(id); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Logout failed"})
			}
		}

		c.Cookie(&fiber.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Expires:  time.Now().Add(-1 * time.Hour),
			MaxAge:   -1,
			HTTPOnly: true,
			Secure:   cfg.IsProduction(),
			SameSite: "Lax",
			Path:     "/",
		})

		return c.JSON(fiber.Map{"success": true, "message": "Logged out successfully"})
	}
}
