package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-board/internal/api/http/handlers"
	"github.com/spec-kit/shift-board/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Dashboard  *handlers.DashboardHandler
	Supervisor *handlers.SupervisorHandler
	Gate       *auth.AccessGate
}

// RegisterRoutes wires HTTP routes. The login routes stay outside the gate
// so an invalid session can always reach them.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)

	protected := app.Group("", cfg.Gate.Handle)
	protected.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	})
	protected.Get("/dashboard", cfg.Dashboard.View)

	supervisor := protected.Group("/supervisor", cfg.Gate.RequireSupervisor)
	supervisor.Get("", cfg.Supervisor.View)
	supervisor.Post("/announcement", cfg.Supervisor.PostAnnouncement)
	supervisor.Post("/start-time", cfg.Supervisor.UpsertStartTime)
	supervisor.Post("/users", cfg.Supervisor.UpsertUser)
}
