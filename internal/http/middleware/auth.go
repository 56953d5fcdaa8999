package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// AdminLocalKey is the locals key holding the *service.AdminClaims of an authenticated request.
const AdminLocalKey = "admin"

// TokenValidator verifies administrator bearer tokens.
type TokenValidator interface {
	Validate(token string) (*service.AdminClaims, error)
}

// RequireAdmin rejects requests without a valid "Authorization: Bearer <token>" header.
func RequireAdmin(v TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := v.Validate(strings.TrimSpace(token))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals(AdminLocalKey, claims)
		return c.Next()
	}
}

// NoStore marks responses as uncacheable by browsers and proxies.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
