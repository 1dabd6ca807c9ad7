package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/auth"
	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/models"
	"gorm.io/gorm"
)

// TokenRequired authenticates requests via "Authorization: Token <key>".
// The key is an opaque database lookup; the matched user is stored in locals
// for downstream handlers.
func TokenRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Authentication credentials were not provided.",
			})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Token" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid token header.",
			})
		}

		var token models.AuthToken
		err := db.Preload("User").Where("key = ?", parts[1]).First(&token).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Error: true, Message: "Internal server error",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid token.",
			})
		}

		if !token.User.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User inactive or deleted.",
			})
		}

		c.Locals(auth.LocalsKey, &token.User)
		return c.Next()
	}
}
