// Package api assembles the HTTP server for the focus peaking service.
package api

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"focuspeak/internal/api/handlers"
	"focuspeak/internal/config"
)

// NewServer builds the fiber application with all routes registered. When a
// static directory is configured, unknown GET paths fall back to its
// index.html so client-side routes survive a page reload.
func NewServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.BodyLimitMB * 1024 * 1024,
	})
	app.Use(cors.New())

	handlers.RegisterHealthRoutes(app)
	handlers.RegisterFrameRoutes(app, cfg)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
		index := filepath.Join(cfg.StaticDir, "index.html")
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendFile(index)
		})
	}
	return app
}
