package middleware

import (
	"strings"

	"seafood-exporter-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin validates an admin JWT taken from the Authorization header,
// or from the token query parameter for websocket upgrades where browsers
// cannot set headers.
func RequireAdmin(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(secret) == 0 {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Admin access not configured"})
		}

		tokenString := c.Query("token")
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
			}
			tokenString = parts[1]
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		claims, err := jwt.ValidateToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}
		if claims.Role != jwt.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden: requires admin role"})
		}

		c.Locals("admin_subject", claims.Subject)
		return c.Next()
	}
}
