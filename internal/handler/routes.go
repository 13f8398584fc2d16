package handler

import (
	"github.com/gatherly/gatherly-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api. Reads run with optional
// authentication so listing can apply per-actor visibility; every mutation
// sits behind the required-auth middleware.
func RegisterRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	eventHandler *EventHandler,
	rsvpHandler *RSVPHandler,
	reviewHandler *ReviewHandler,
) {
	api := app.Group("/api")

	api.Post("/register", authHandler.Register)
	api.Post("/token", authHandler.Token)

	api.Get("/events", middleware.AuthOptional(), eventHandler.ListEvents)
	api.Get("/events/:id", middleware.AuthOptional(), eventHandler.GetEvent)
	api.Get("/events/:id/reviews", reviewHandler.ListReviews)

	api.Post("/events", middleware.AuthRequired(), eventHandler.CreateEvent)
	api.Patch("/events/:id/update", middleware.AuthRequired(), eventHandler.UpdateEvent)
	api.Delete("/events/:id/delete", middleware.AuthRequired(), eventHandler.DeleteEvent)
	api.Post("/events/:id/rsvp", middleware.AuthRequired(), rsvpHandler.CreateRSVP)
	api.Patch("/events/:id/rsvp/:userId", middleware.AuthRequired(), rsvpHandler.UpdateRSVP)
	api.Post("/events/:id/reviews", middleware.AuthRequired(), reviewHandler.CreateReview)
}
