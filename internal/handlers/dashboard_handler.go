package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/auth"
	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/services"
)

type DashboardHandler struct {
	userService *services.UserService
}

func NewDashboardHandler(userService *services.UserService) *DashboardHandler {
	return &DashboardHandler{userService: userService}
}

// UserDashboard handles GET /user-dashboard. Dashboards are role-exclusive:
// an admin gets redirected to theirs, not shown this one.
func (h *DashboardHandler) UserDashboard(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Authentication credentials were not provided.",
		})
	}

	if user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.RedirectResponse{
			Error:    "Unauthorized access",
			Redirect: "api/admin-dashboard/",
		})
	}

	return c.JSON(dto.UserDashboardResponse{
		Message: "User Dashboard",
		User:    *user,
	})
}

// AdminDashboard handles GET /admin-dashboard with user counts.
func (h *DashboardHandler) AdminDashboard(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Authentication credentials were not provided.",
		})
	}

	if !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.RedirectResponse{
			Error:    "Unauthorized access",
			Redirect: "/user-dashboard/",
		})
	}

	stats, err := h.userService.CountByRole()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AdminDashboardResponse{
		Message: "Admin Dashboard",
		User:    *user,
		Stats:   stats,
	})
}
