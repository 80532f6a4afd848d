// Package router assembles the Fiber application: middlewares and routes.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pulsekit/pulsekit/internal/analysis"
	"github.com/pulsekit/pulsekit/internal/handlers"
	"github.com/pulsekit/pulsekit/internal/live"
	"github.com/pulsekit/pulsekit/internal/logging"
	"github.com/pulsekit/pulsekit/internal/session"
)

// New builds the Fiber app with all routes configured. monitor may be nil
// for analysis-only deployments.
func New(logger *logging.Logger, monitor *live.Monitor, store *session.Store, analyzer *analysis.Analyzer) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	h := handlers.New(logger, monitor, store, analyzer)

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	app.Get("/health", h.Health)

	v1 := app.Group("/v1")
	v1.Get("/live", h.Live)
	v1.Get("/sessions", h.ListSessions)
	v1.Get("/sessions/:session/report", h.SessionReport)

	app.Use(h.NotFound)

	return app
}
