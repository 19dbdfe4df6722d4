// Package statichost serves the client's static assets over HTTP. It is a
// deliberately thin host: one app entry route, the asset directory, and a
// permissive CORS policy so the API can live on another origin.
package statichost

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber app serving cfg.StaticDir. GET / returns the entry
// document; everything else resolves against the static directory.
func NewApp(cfg *Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
	})

	app.Static("/", cfg.StaticDir)

	return app
}
