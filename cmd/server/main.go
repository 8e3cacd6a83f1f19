package main

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/example/foodbridge/internal/config"
	"github.com/example/foodbridge/internal/database"
	"github.com/example/foodbridge/internal/logger"
	"github.com/example/foodbridge/internal/routes"
	"github.com/example/foodbridge/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	// A failed connection is not fatal: the service starts degraded and
	// store-dependent routes answer 503 per request.
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, starting in degraded mode")
		db = nil
	}

	store, err := newBlobStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("blob store initialization failed")
	}

	app := fiber.New(fiber.Config{
		AppName:      "FoodBridge Backend",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(corsConfig(cfg)))

	routes.Register(app, db, store, cfg, log)

	log.Info().Str("port", cfg.AppPort).Msg("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("fiber.Listen error")
	}
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3Store(context.Background(), storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewLocalStore(cfg.UploadDir), nil
}

func corsConfig(cfg *config.Config) cors.Config {
	if len(cfg.AllowedOrigins) == 0 {
		return cors.Config{}
	}
	return cors.Config{AllowOrigins: strings.Join(cfg.AllowedOrigins, ",")}
}

// errorHandler guarantees every error response carries a message while
// unexpected failures stay generic for the caller and detailed in the log.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went wrong"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		} else {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("request failed")
		}

		return c.Status(code).JSON(fiber.Map{"success": false, "message": message})
	}
}
