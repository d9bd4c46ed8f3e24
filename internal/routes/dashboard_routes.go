package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventplanner/internal/handlers"
	"eventplanner/internal/middleware"
)

func DashboardRoutes(app *fiber.App, deps Deps) {
	dashboard := app.Group("/dashboard", middleware.RequireAuth())

	dashboard.Get("/admin", middleware.RequireAdmin(), handlers.AdminDashboardHandler(deps.Catalog, deps.Aggregator))
	dashboard.Get("/user", handlers.UserDashboardHandler(deps.Catalog, deps.Aggregator))
}
