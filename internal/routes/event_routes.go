package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventplanner/internal/handlers"
	"eventplanner/internal/middleware"
)

func EventRoutes(app *fiber.App, deps Deps) {
	events := app.Group("/events", middleware.RequireAuth())

	events.Get("/", handlers.ListEventsHandler(deps.Catalog))
	events.Get("/stream", handlers.EventStreamHandler(deps.Catalog))
	events.Get("/:id", handlers.EventDetailHandler(deps.Catalog, deps.Aggregator, deps.Users))
	events.Post("/:id/rsvp", handlers.SubmitRSVPHandler(deps.Catalog, deps.Aggregator))

	admin := app.Group("/events", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.Post("/", handlers.CreateEventHandler(deps.Catalog))
	admin.Put("/:id", handlers.UpdateEventHandler(deps.Catalog))
	admin.Delete("/:id", handlers.DeleteEventHandler(deps.Catalog))

	app.Get("/rsvps/stream", middleware.RequireAuth(), handlers.RSVPStreamHandler(deps.Aggregator))
}
