package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
	"github.com/uzha1981/sport-za-sve-backend/internal/handler"
	"github.com/uzha1981/sport-za-sve-backend/internal/mailer"
	"github.com/uzha1981/sport-za-sve-backend/internal/middleware"
	"github.com/uzha1981/sport-za-sve-backend/internal/realtime"
	"github.com/uzha1981/sport-za-sve-backend/internal/repository"
	"github.com/uzha1981/sport-za-sve-backend/internal/service"
	"github.com/uzha1981/sport-za-sve-backend/internal/stripepay"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	repo, err := repository.New(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	// Upload directory for club logos
	if err := os.MkdirAll(cfg.Server.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	// Websocket hub for push notifications
	hub := realtime.NewHub()

	// Outbound integrations
	mail := mailer.New(cfg)
	stripeClient := stripepay.New(cfg.Stripe.SecretKey)

	// Create services
	authSvc := service.NewAuthService(repo, mail, cfg)
	klubSvc := service.NewKlubService(repo, hub)
	paymentSvc := service.NewPaymentService(repo, hub, stripeClient, cfg)
	referralSvc := service.NewReferralService(repo)
	activitySvc := service.NewActivityService(repo, hub)
	notificationSvc := service.NewNotificationService(repo)

	// Create handlers
	h := handler.New(cfg, authSvc, klubSvc, paymentSvc, referralSvc, activitySvc, notificationSvc, repo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", h.Health)
	app.Get("/api/health", h.Health)

	// Static club logos
	app.Static("/uploads", cfg.Server.UploadDir)

	// Public API (no auth required)
	app.Post("/api/register", h.Register)
	app.Post("/api/register-klub", h.RegisterKlub)
	app.Post("/api/login", h.Login)
	app.Get("/api/verify-email", h.VerifyEmail)
	app.Get("/api/clubs", h.Clubs)

	// Websocket push channel
	app.Use("/ws", realtime.Upgrade)
	app.Get("/ws", hub.Handler())

	// Authenticated API
	api := app.Group("/api", middleware.Protected(cfg))

	// Profiles
	api.Get("/user-profile", h.UserProfile)
	api.Put("/user-profile", h.UpdateUserProfile)
	api.Get("/club-profile", h.ClubProfile)

	// Club membership
	api.Post("/join-klub", h.JoinKlub)
	api.Get("/my-klub", h.MyKlub)
	api.Get("/club-members", h.ClubMembers)
	api.Post("/upload-logo", h.UploadLogo)

	// Payments and Stripe
	api.Post("/record-payment", h.RecordPayment)
	api.Post("/stripe/create-payment-intent", h.CreatePaymentIntent)
	api.Get("/stripe/onboard-club", h.OnboardClub)

	// Activities
	api.Post("/activities", h.CreateActivity)
	api.Get("/activities", h.Activities)
	api.Get("/my-activities", h.MyActivities)
	api.Put("/activities/:id", h.UpdateActivity)
	api.Delete("/activities/:id", h.DeleteActivity)

	// Referrals
	api.Get("/my-referrals", h.MyReferrals)
	api.Get("/my-earnings", h.MyEarnings)
	api.Post("/request-payout", h.RequestPayout)

	// Notifications and messages
	api.Post("/notifications", h.CreateNotification)
	api.Get("/my-notifications", h.MyNotifications)
	api.Patch("/notifications/:id/read", h.MarkNotificationRead)
	api.Post("/messages", h.SendMessage)

	// Admin routes
	admin := app.Group("/api/admin", middleware.Protected(cfg), middleware.RequireAdmin())
	admin.Get("/referral-payouts", h.ReferralPayouts)
	admin.Get("/total-referral-payouts", h.TotalReferralPayouts)

	// Test-only database reset
	if cfg.Server.TestMode {
		app.Delete("/api/test-utils/reset", h.Reset)
		if err := repo.ResetAll(context.Background()); err != nil {
			log.Printf("Warning: initial test reset failed: %v", err)
		}
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
