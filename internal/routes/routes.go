package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/zineb-24/ReportingBackend/internal/handlers"
	"github.com/zineb-24/ReportingBackend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	userHandler *handlers.UserHandler,
	salleHandler *handlers.SalleHandler,
	linkHandler *handlers.LinkHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Login gets a stricter limit: 10 req/min per IP
	api.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	authed := middleware.TokenRequired(db)
	adminOnly := middleware.AdminRequired()

	// Dashboards bifurcate by role inside the handler rather than through
	// the admin gate: each role is redirected off the other's dashboard.
	api.Get("/user-dashboard", authed, dashboardHandler.UserDashboard)
	api.Get("/admin-dashboard", authed, dashboardHandler.AdminDashboard)

	users := api.Group("/admin-dashboard/users", authed, adminOnly)
	users.Post("/create", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id<int>", userHandler.Get)
	users.Put("/:id<int>", userHandler.Update)
	users.Patch("/:id<int>", userHandler.Update)
	users.Delete("/:id<int>", userHandler.Delete)
	users.Get("/:user_id<int>/salles", linkHandler.SallesForUser)

	salles := api.Group("/admin-dashboard/salles", authed, adminOnly)
	salles.Post("/create", salleHandler.Create)
	salles.Get("/", salleHandler.List)
	salles.Get("/:id<int>", salleHandler.Get)
	salles.Put("/:id<int>", salleHandler.Update)
	salles.Patch("/:id<int>", salleHandler.Update)
	salles.Delete("/:id<int>", salleHandler.Delete)
	salles.Get("/:salle_id<int>/users", linkHandler.UsersForSalle)

	links := api.Group("/admin-dashboard/links", authed, adminOnly)
	links.Post("/create", linkHandler.Create)
	links.Get("/", linkHandler.List)
	links.Get("/:id<int>", linkHandler.Get)
	links.Delete("/:id<int>", linkHandler.Delete)
}
