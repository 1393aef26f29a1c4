package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/artem13815/userhub/api/http/handlers"
)

// Deps carries the handlers and optional middleware for Register.
type Deps struct {
	Auth   *handlers.AuthHandler
	Users  *handlers.UserHandler
	Health *handlers.HealthHandler

	// UsersAuth guards /api/users when set.
	UsersAuth fiber.Handler
	// AuthLimiter throttles /api/auth when set.
	AuthLimiter fiber.Handler
	// Metrics is mounted on /metrics when set.
	Metrics nethttp.Handler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, d Deps) {
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(d.Metrics))
	}

	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", d.Health.Health)
	api.Get("/ready", d.Health.Ready)

	a := api.Group("/auth", optional(d.AuthLimiter))
	a.Post("/register", d.Auth.Register)
	a.Post("/login", d.Auth.Login)

	u := api.Group("/users", optional(d.UsersAuth))
	u.Get("/", d.Users.List)
	u.Post("/", d.Users.Create)
	u.Get("/:id", d.Users.GetByID)
	u.Put("/:id", d.Users.Update)
	u.Delete("/:id", d.Users.Delete)
}

func optional(h fiber.Handler) fiber.Handler {
	if h == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return h
}
