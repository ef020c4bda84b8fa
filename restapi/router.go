// Package restapi provides the main router and initialization for the HTTP endpoints.
package restapi

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abhid/portfolio-backend/config"
	"github.com/abhid/portfolio-backend/internal/session"
	"github.com/abhid/portfolio-backend/internal/uploads"
	"github.com/abhid/portfolio-backend/restapi/modules/auth"
	"github.com/abhid/portfolio-backend/restapi/modules/contact"
	"github.com/abhid/portfolio-backend/restapi/modules/settings"
	"github.com/abhid/portfolio-backend/restapi/modules/works"
	"github.com/abhid/portfolio-backend/store"
)

// SetupRoutes configures the public API, the admin API and the admin pages.
func SetupRoutes(app *fiber.App, st *store.Store, sessions session.Store, media *uploads.Manager, cfg *config.Config, logger *zap.Logger) {
	if err := auth.BootstrapAdmin(st, cfg, logger); err != nil {
		logger.Warn("failed to bootstrap admin account", zap.Error(err))
	}

	requireAuth := auth.RequireAuth(sessions, []byte(cfg.SessionSecret))

	// Public API
	api := app.Group("/api")
	api.Get("/health", healthCheck)
	api.Get("/settings", settings.Get(st))
	api.Get("/works", works.List(st))
	api.Post("/contact", contact.Submit(logger))

	// Admin pages + API
	admin := app.Group("/admin")
	admin.Get("/login", servePage(cfg.PublicDir, "login.html"))
	admin.Get("/dashboard", requireAuth, servePage(cfg.PublicDir, "dashboard.html"))
	admin.Post("/login", auth.Login(st, sessions, cfg))
	admin.Post("/logout", auth.Logout(sessions, cfg))

	// The works list stays readable without a session so the public site
	// can share the admin endpoint.
	admin.Get("/works", works.List(st))
	admin.Post("/works", requireAuth, works.Create(st, media))
	admin.Put("/works/:id", requireAuth, works.Update(st, media))
	admin.Delete("/works/:id", requireAuth, works.Delete(st))
	admin.Get("/settings", requireAuth, settings.Get(st))
	admin.Post("/settings", requireAuth, settings.Update(st, media))
}

// healthCheck returns a fixed liveness payload.
func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// servePage sends a static admin page from <publicDir>/views/admin.
func servePage(publicDir, name string) fiber.Handler {
	page := filepath.Join(publicDir, "views", "admin", name)
	return func(c *fiber.Ctx) error {
		if _, err := os.Stat(page); err != nil {
			return c.Status(fiber.StatusNotFound).SendString("Page not found")
		}
		return c.SendFile(page)
	}
}
