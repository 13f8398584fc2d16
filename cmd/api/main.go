package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gatherly/gatherly-backend/internal/config"
	"github.com/gatherly/gatherly-backend/internal/handler"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/repository"
	"github.com/gatherly/gatherly-backend/internal/service"
	"github.com/gatherly/gatherly-backend/pkg/database"
	"github.com/gatherly/gatherly-backend/pkg/notifier"
	"github.com/gatherly/gatherly-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Event{},
		&models.RSVP{},
		&models.Review{},
	); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Notification dispatcher
	dispatcher := notifier.NewEmailDispatcher(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		zapLogger,
	)

	// Services
	authService := service.NewAuthService(userRepo)
	eventService := service.NewEventService(eventRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo, dispatcher)
	reviewService := service.NewReviewService(reviewRepo, eventRepo, dispatcher)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	rsvpHandler := handler.NewRSVPHandler(rsvpService, validator)
	reviewHandler := handler.NewReviewHandler(reviewService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	handler.RegisterRoutes(app, authHandler, eventHandler, rsvpHandler, reviewHandler)

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
