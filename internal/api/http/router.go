package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/playplanner-service/internal/api/http/handlers"
	"github.com/spec-kit/playplanner-service/internal/auth"
	"github.com/spec-kit/playplanner-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Classes        *handlers.ClassesHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Token verification runs for every
// request; only the record routes demand a principal.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.AuthMiddleware.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	login := app.Group("/login")
	login.Post("/signup", cfg.Auth.SignUp)
	login.Post("/signin", cfg.Auth.SignIn)

	// Guards sit on each route so unmatched paths sharing a prefix still 404.
	protected := cfg.AuthMiddleware.RequirePrincipal()

	events := app.Group("/events")
	events.Get("/", protected, cfg.Events.List)
	events.Post("/", protected, cfg.Events.Create)
	events.Get("/:id", protected, cfg.Events.Get)
	events.Put("/:id", protected, cfg.Events.Update)
	events.Delete("/:id", protected, cfg.Events.Delete)

	classes := app.Group("/classes")
	classes.Get("/", protected, cfg.Classes.List)
	classes.Post("/", protected, cfg.Classes.Create)
	classes.Get("/:id", protected, cfg.Classes.Get)
	classes.Put("/:id", protected, cfg.Classes.Update)
	classes.Delete("/:id", protected, cfg.Classes.Delete)

	app.Get("/dashboard", protected, cfg.Dashboard.Get)
}
