package middleware

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/internal/api/presenters"
	"BulkBlitz-Backend/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		BareAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware stores the caller's id in the "user_id" local.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, message, err := authenticate(c, jwtService)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, message, err)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// BareAuthMiddleware is AuthMiddleware for endpoints whose error body is a
// plain {"error": message}.
func (m *middleware) BareAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, message, err := authenticate(c, jwtService)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, jwtService jwt.JWTService) (string, string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", domain.MessageUnauthorized, domain.ErrTokenNotFound
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid
	}

	userID, _, err := jwtService.GetUserIDByToken(strings.TrimSpace(token))
	if err != nil {
		return "", domain.MessageFailedTokenInvalid, err
	}

	return userID, "", nil
}
