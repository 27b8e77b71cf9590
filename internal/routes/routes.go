package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/config"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	User      *handlers.UserHandler
	Admin     *handlers.AdminHandler
	Property  *handlers.PropertyHandler
	Checklist *handlers.ChecklistHandler
	Health    *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers, metrics *middleware.Metrics) {
	if metrics != nil {
		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())
	}

	api := app.Group("/api")

	if cfg.RateLimitMax > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitMax,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	// Admin panel routes stay open unless ADMIN_AUTH_REQUIRED is set.
	admin := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.AdminAuthRequired {
		admin = middleware.AdminRequired(cfg)
	}

	api.Get("/health", h.Health.Check)

	// Properties. Static paths go before /:id.
	api.Post("/properties", admin, h.Property.Create)
	api.Get("/properties", h.Property.List)
	api.Get("/properties/data", h.Property.ListOverview)
	api.Get("/properties/mobile-list", h.Property.ListMobile)
	api.Get("/properties/checklist/properties", h.Property.List)
	api.Get("/properties/:id", h.Property.Get)
	api.Delete("/properties/:id", admin, h.Property.Delete)

	// Checklist
	api.Get("/checklist", h.Checklist.List)
	api.Post("/checklist", admin, h.Checklist.Create)

	// Users
	api.Post("/register", h.User.Register)
	api.Post("/user/login", h.User.Login)
	api.Get("/user", admin, h.User.List)
	api.Post("/user/block", admin, h.User.UpdateStatus)
	api.Delete("/user/:id", admin, h.User.Delete)

	// Admins
	api.Post("/admins/signup", h.Admin.Signup)
	api.Post("/admins/login", h.Admin.Login)
	api.Get("/admins", admin, h.Admin.List)
}
