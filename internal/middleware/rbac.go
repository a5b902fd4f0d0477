package middleware

import (
	"slices"

	common_models "go-citizen/internal/common/models"
	"go-citizen/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRole restricts an endpoint to the given roles. Admin always passes.
// Stage-level authorization stays in the workflow service; this only guards
// the transport surface.
func RequireRole(roles ...common_models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if claims.Role == common_models.RoleAdmin {
			return c.Next()
		}

		if !slices.Contains(roles, claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
