package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SanzharBissenali/tazaQala/config"
	"github.com/SanzharBissenali/tazaQala/controllers"
	"github.com/SanzharBissenali/tazaQala/database"
	"github.com/SanzharBissenali/tazaQala/routes"
	"github.com/SanzharBissenali/tazaQala/upload"
)

func main() {
	cfg := config.Load()

	store, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer store.Disconnect(context.Background())

	var imageUploader controllers.ImageUploader
	if cld, err := upload.NewCloudinary(cfg); err != nil {
		log.Printf("upload: image hosting disabled: %v", err)
	} else {
		imageUploader = cld
	}

	app := fiber.New()
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: false,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}))

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// API
	routes.Register(app,
		controllers.NewReportHandler(store),
		controllers.NewUploadHandler(imageUploader),
	)

	log.Printf("API listening on %s", cfg.Addr)
	// Not log.Fatal: os.Exit would skip the store disconnect above.
	if err := app.Listen(cfg.Addr); err != nil {
		log.Printf("listen: %v", err)
	}
}
