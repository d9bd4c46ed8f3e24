package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventplanner/internal/catalog"
	"eventplanner/internal/handlers"
	"eventplanner/internal/rsvp"
	"eventplanner/internal/session"
)

type Deps struct {
	Sessions   *session.Service
	Catalog    *catalog.Catalog
	Aggregator *rsvp.Aggregator
	Users      *mongo.Collection
}

func Register(app *fiber.App, deps Deps) {
	AuthRoutes(app, deps)
	EventRoutes(app, deps)
	DashboardRoutes(app, deps)

	app.Get("/whoami", handlers.WhoamiHandler())
}
