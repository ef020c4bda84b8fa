// package main provides the entry point for the portfolio-backend service:
// a small site backend serving static pages, a public read API for works
// and settings, and an admin CRUD surface over flat-JSON data files.
package main

import (
	"log"

	"github.com/abhid/portfolio-backend/config"
	"github.com/abhid/portfolio-backend/internal/api"
	"github.com/abhid/portfolio-backend/internal/session"
	"github.com/abhid/portfolio-backend/internal/uploads"
	"github.com/abhid/portfolio-backend/store"
)

func main() {
	cfg := config.Load()
	zlog := store.InitLogger()

	if cfg.IsProduction() && cfg.SessionSecret == config.DefaultSessionSecret {
		zlog.Warn("running in production with the default session secret, set SESSION_SECRET")
	}

	media := uploads.New(cfg.PublicDir, zlog)
	if err := media.Init(); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	st := store.New(cfg.DataDir, media)
	if err := st.Init(); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	sessions := session.NewMemoryStore(session.TTL)

	app := api.NewFiberApp(st, sessions, media, cfg, zlog)

	log.Printf("Starting server on port %s", cfg.Port)
	log.Printf("Environment: %s", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
