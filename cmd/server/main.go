package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pointnow/web/internal/config"
	"github.com/pointnow/web/internal/database"
	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/routes"
	"github.com/pointnow/web/internal/session"
)

func main() {
	cfg := config.Load()

	storage, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("session storage init failed: %v", err)
	}

	api := pointnow.New(cfg.APIBaseURL)
	sessions := session.NewManager(storage)

	app := fiber.New(fiber.Config{
		AppName: "PointNow Web",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, api, sessions, cfg)

	// Warm-up ping; a misconfigured backend URL should be visible at startup,
	// not on the first user request.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if _, err := api.ListRegions(ctx); err != nil {
		log.Printf("[PointNow] backend warm-up failed: %v", err)
	}
	cancel()

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

func buildStorage(cfg *config.Config) (session.Storage, error) {
	switch cfg.SessionBackend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return session.NewRedisStorage(ctx, cfg.RedisURL, cfg.SessionTTL)
	case "postgres":
		return session.NewGormStorage(database.Connect(cfg.DatabaseURL))
	case "file":
		return session.NewFileStorage(cfg.SessionFileDir, cfg.SessionFileKey)
	default:
		log.Printf("[Session] using in-memory storage; sessions will not survive a restart")
		return session.NewMemoryStorage(), nil
	}
}
