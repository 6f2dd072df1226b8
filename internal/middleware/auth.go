package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wizqo2024/wizqo-sub000/pkg/utils"
)

// OptionalAuth validates a bearer token when one is present and records the
// result in request locals. Requests without a valid token proceed as
// guests; the progress unlock cap keys off the "authenticated" local.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("authenticated", false)

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Next()
		}

		c.Locals("authenticated", true)
		c.Locals("auth_user_id", claims.UserID)

		return c.Next()
	}
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("authenticated", true)
		c.Locals("auth_user_id", claims.UserID)

		return c.Next()
	}
}
