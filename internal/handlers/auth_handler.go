package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /login. On success the response carries the persistent
// token and the dashboard the client should route to.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountDisabled) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User account is disabled.",
			})
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unable to log in with provided credentials.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	redirect := "api/user-dashboard/"
	if user.IsAdmin {
		redirect = "api/admin-dashboard/"
	}

	return c.JSON(dto.LoginResponse{
		Token:       token.Key,
		UserID:      user.ID,
		Email:       user.Email,
		IsAdmin:     user.IsAdmin,
		RedirectURL: redirect,
	})
}
