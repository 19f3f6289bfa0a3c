package exts

import (
	"strings"

	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// AuthMiddleware resolves the bearer token into a full account row so
// handlers can read the requester's role and language preferences from
// c.Locals("user"). Requests without a valid token stay anonymous.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		if id, err := services.ParseAccessToken(token); err == nil {
			if account, err := services.GetAccountWithID(id); err == nil {
				c.Locals("user", account)
			}
		}
	}

	return c.Next()
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "you are not authorized")
	}

	return nil
}

func EnsureRole(c *fiber.Ctx, roles ...string) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "you are not authorized")
	}
	if !lo.Contains(roles, user.Role) {
		return fiber.NewError(fiber.StatusForbidden, "you don't have the permission to do this")
	}

	return nil
}
