// Package api assembles the Fiber application.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/abhid/portfolio-backend/config"
	"github.com/abhid/portfolio-backend/internal/session"
	"github.com/abhid/portfolio-backend/internal/uploads"
	"github.com/abhid/portfolio-backend/restapi"
	"github.com/abhid/portfolio-backend/store"
)

// NewFiberApp creates and configures a Fiber app with the API routes, the
// static site (including /uploads) and the fallthrough 404 handler.
func NewFiberApp(st *store.Store, sessions session.Store, media *uploads.Manager, cfg *config.Config, zlog *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "portfolio-backend API v1.0",
		BodyLimit:   50 * 1024 * 1024, // matches the per-file upload ceiling
		ReadTimeout: 60 * time.Second, // generous for media uploads
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000,http://127.0.0.1:3000",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With",
		AllowCredentials: true,
		AllowMethods:     "GET, POST, HEAD, PUT, DELETE, OPTIONS",
	}))

	restapi.SetupRoutes(app, st, sessions, media, cfg, zlog)

	// Site assets and uploaded media; anything still unmatched is a 404.
	app.Static("/", cfg.PublicDir)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Page not found")
	})

	return app
}
