package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/auth"
	"github.com/zineb-24/ReportingBackend/internal/dto"
)

// AdminRequired rejects non-admin users. It runs before any id lookup so a
// 403 never reveals whether the target resource exists.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Authentication credentials were not provided.",
			})
		}

		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Only admin users can access this resource",
			})
		}

		return c.Next()
	}
}
