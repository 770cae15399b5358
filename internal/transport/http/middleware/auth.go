package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlaserp/backend/internal/core/ports"
	"github.com/atlaserp/backend/internal/domain"
	"github.com/atlaserp/backend/internal/transport/http/dto"
)

// UserKey is where SessionAuth stores the resolved user in fiber locals.
const UserKey = "current_user"

// SessionAuth resolves the session cookie into a user and rejects
// unauthenticated callers. A missing or stale cookie is a 401, never a 500.
func SessionAuth(identity ports.IdentityService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return unauthenticated(c)
		}
		user, err := identity.Resolve(token)
		if err != nil {
			return unauthenticated(c)
		}
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// AdminOnly requires SessionAuth upstream and a user with the admin role.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthenticated(c)
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "forbidden",
				Code:  dto.CodeForbidden,
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the user placed in locals by SessionAuth, or nil.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(UserKey).(*domain.User)
	return user
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: "unauthorized",
		Code:  dto.CodeUnauthenticated,
	})
}
