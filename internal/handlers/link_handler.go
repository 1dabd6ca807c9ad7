package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/auth"
	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/services"
)

type LinkHandler struct {
	linkService *services.LinkService
}

func NewLinkHandler(linkService *services.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// Create handles POST /admin-dashboard/links/create. A duplicate pair is a
// validation error, and the right signal for an idempotent retry.
func (h *LinkHandler) Create(c *fiber.Ctx) error {
	creator, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Authentication credentials were not provided.",
		})
	}

	var req dto.CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	link, err := h.linkService.Create(req.IDUser, req.IDSalle, creator)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateLink) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "This user is already linked to this salle.",
			})
		}
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrSalleNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create link",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}

// List handles GET /admin-dashboard/links?user_id=&salle_id= with combinable
// equality filters.
func (h *LinkHandler) List(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id", 0)
	salleID := c.QueryInt("salle_id", 0)
	if userID < 0 {
		userID = 0
	}
	if salleID < 0 {
		salleID = 0
	}

	links, err := h.linkService.List(uint(userID), uint(salleID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list links",
		})
	}

	details := make([]dto.LinkDetail, len(links))
	for i := range links {
		details[i] = dto.NewLinkDetail(&links[i])
	}
	return c.JSON(details)
}

// Get handles GET /admin-dashboard/links/:id.
func (h *LinkHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Link not found",
		})
	}

	link, err := h.linkService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Link not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to get link",
		})
	}

	return c.JSON(dto.NewLinkDetail(link))
}

// Delete handles DELETE /admin-dashboard/links/:id.
func (h *LinkHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Link not found",
		})
	}

	if err := h.linkService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Link not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete link",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SallesForUser handles GET /admin-dashboard/users/:user_id/salles. Missing
// users simply have no links, so the result is an empty list.
func (h *LinkHandler) SallesForUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	salles, err := h.linkService.SallesForUser(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list salles for user",
		})
	}
	return c.JSON(salles)
}

// UsersForSalle handles GET /admin-dashboard/salles/:salle_id/users.
func (h *LinkHandler) UsersForSalle(c *fiber.Ctx) error {
	salleID, err := c.ParamsInt("salle_id")
	if err != nil || salleID < 1 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Salle not found",
		})
	}

	users, err := h.linkService.UsersForSalle(uint(salleID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users for salle",
		})
	}
	return c.JSON(users)
}
