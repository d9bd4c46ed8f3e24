package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventplanner/internal/handlers"
	"eventplanner/internal/middleware"
)

func AuthRoutes(app *fiber.App, deps Deps) {
	auth := app.Group("/auth")

	auth.Post("/signup", handlers.SignupHandler(deps.Sessions))
	auth.Post("/login", handlers.LoginHandler(deps.Sessions))
	auth.Post("/logout", middleware.RequireAuth(), handlers.LogoutHandler(deps.Sessions))
	auth.Get("/me", middleware.RequireAuth(), handlers.MeHandler(deps.Sessions))
}
