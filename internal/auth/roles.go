package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/landlordly/internal/domain"
)

// RequireTenant ensures the caller is an authenticated tenant.
func RequireTenant() fiber.Handler {
	return requireRole(domain.RoleTenant)
}

// RequireLandlord ensures the caller is an authenticated landlord.
func RequireLandlord() fiber.Handler {
	return requireRole(domain.RoleLandlord)
}

// RequireAnyRole ensures the caller is authenticated.
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}

func requireRole(role domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if principal.Role != role {
			return fiber.NewError(http.StatusForbidden, string(role)+" role required")
		}
		return c.Next()
	}
}
