package middleware

import (
	"strings"

	"github.com/gatherly/gatherly-backend/internal/models"
	jwtPkg "github.com/gatherly/gatherly-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

const actorKey = "actor"

// AuthRequired rejects requests without a valid Bearer token and stores the
// resulting actor in the request context.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := actorFromHeader(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// AuthOptional resolves an actor when a valid token is present and leaves the
// request anonymous otherwise. It never rejects.
func AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if actor, err := actorFromHeader(c); err == nil {
			c.Locals(actorKey, actor)
		}
		return c.Next()
	}
}

// ActorFromContext returns the authenticated actor, or nil for anonymous
// requests. Callers must treat nil as unauthenticated, never substitute a
// default user.
func ActorFromContext(c *fiber.Ctx) *models.Actor {
	actor, _ := c.Locals(actorKey).(*models.Actor)
	return actor
}

func actorFromHeader(c *fiber.Ctx) (*models.Actor, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authorization header is required")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := jwtPkg.ValidateToken(tokenString)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &models.Actor{
		UserID:   uint(userIDFloat),
		Username: username,
		Email:    email,
	}, nil
}
