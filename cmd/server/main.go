package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/redis/rueidis"

	"eventplanner/bootstrap"
	"eventplanner/database"
	_ "eventplanner/docs"
	"eventplanner/internal/catalog"
	"eventplanner/internal/config"
	"eventplanner/internal/logger"
	"eventplanner/internal/middleware"
	"eventplanner/internal/routes"
	"eventplanner/internal/rsvp"
	"eventplanner/internal/session"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	slogger := logger.Setup(cfg.LogLevel)

	// --- MongoDB Connection ---
	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Redis (token revocation) ---
	redis, err := rueidis.NewClient(rueidis.ClientOption{InitAddress: []string{cfg.RedisAddr}})
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer redis.Close()

	sessions := session.New(slogger, db, redis, cfg.JWTSecret, cfg.TokenTTL)
	events := catalog.New(slogger, db)
	rsvps := rsvp.New(slogger, db)

	// Live mirrors run for the life of the process.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go events.Start(ctx)
	go rsvps.Start(ctx)

	// --- Fiber App Setup ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.RequestID())

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.Auth(sessions))

	routes.Register(app, routes.Deps{
		Sessions:   sessions,
		Catalog:    events,
		Aggregator: rsvps,
		Users:      db.Collection("users"),
	})

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	slogger.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
