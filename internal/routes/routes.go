package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/example/foodbridge/internal/config"
	"github.com/example/foodbridge/internal/handlers"
	"github.com/example/foodbridge/internal/middleware"
	"github.com/example/foodbridge/internal/services"
	"github.com/example/foodbridge/internal/storage"
)

// Register wires up all HTTP routes. db may be nil when the service started
// in degraded mode; store-dependent routes then answer 503 per request.
func Register(app *fiber.App, db *gorm.DB, store storage.BlobStore, cfg *config.Config, log zerolog.Logger) {
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, log)

	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)
	donationHandler := handlers.NewDonationHandler(db)
	verificationHandler := handlers.NewVerificationHandler(db, store, telegram)
	contactHandler := handlers.NewContactHandler(db, telegram)

	requireStore := middleware.RequireStore(db)
	requireAuth := middleware.AuthMiddleware(cfg)
	requireAdmin := middleware.RequireAdmin(db)

	api := app.Group("/api")

	// Auth routes. Login stays reachable without a store so the demo
	// fallback can answer.
	auth := api.Group("/auth")
	auth.Post("/register", requireStore, authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Donations: public listing, authenticated ownership-gated mutation.
	donations := api.Group("/donations", requireStore)
	donations.Get("/", donationHandler.List)
	donations.Post("/", requireAuth, donationHandler.Create)
	donations.Patch("/:id", requireAuth, donationHandler.Update)
	donations.Delete("/:id", requireAuth, donationHandler.Delete)

	// Contact: public submission, admin triage.
	contact := api.Group("/contact", requireStore)
	contact.Post("/", contactHandler.Submit)
	contact.Get("/", requireAuth, requireAdmin, contactHandler.ListAll)
	contact.Patch("/:id", requireAuth, requireAdmin, contactHandler.UpdateStatus)

	// Profile
	profile := api.Group("/profile", requireStore, requireAuth)
	profile.Get("/", profileHandler.GetProfile)
	profile.Patch("/", profileHandler.UpdateProfile)
	profile.Get("/donations", profileHandler.ListOwnDonations)

	// Verification workflow
	verification := api.Group("/verification", requireStore, requireAuth)
	verification.Post("/submit", verificationHandler.Submit)
	verification.Get("/status", verificationHandler.Status)
	verification.Patch("/update-status/:userId", requireAdmin, verificationHandler.UpdateStatus)

	// Uploaded documents are retrievable as static blobs.
	app.Static("/uploads", cfg.UploadDir)
}
