package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/auth"
	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/services"
)

type SalleHandler struct {
	salleService *services.SalleService
}

func NewSalleHandler(salleService *services.SalleService) *SalleHandler {
	return &SalleHandler{salleService: salleService}
}

// Create handles POST /admin-dashboard/salles/create.
func (h *SalleHandler) Create(c *fiber.Ctx) error {
	creator, err := auth.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Authentication credentials were not provided.",
		})
	}

	var req dto.CreateSalleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	salle, err := h.salleService.Create(&req, creator)
	if err != nil {
		if errors.Is(err, services.ErrSalleName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Name is required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create salle",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(salle)
}

// List handles GET /admin-dashboard/salles.
func (h *SalleHandler) List(c *fiber.Ctx) error {
	salles, err := h.salleService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list salles",
		})
	}
	return c.JSON(salles)
}

// Get handles GET /admin-dashboard/salles/:id.
func (h *SalleHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Salle not found",
		})
	}

	salle, err := h.salleService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSalleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Salle not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to get salle",
		})
	}

	return c.JSON(salle)
}

// Update handles PUT and PATCH /admin-dashboard/salles/:id.
func (h *SalleHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Salle not found",
		})
	}

	var req dto.UpdateSalleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	salle, err := h.salleService.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrSalleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Salle not found",
			})
		}
		if errors.Is(err, services.ErrSalleName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Name is required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update salle",
		})
	}

	return c.JSON(salle)
}

// Delete handles DELETE /admin-dashboard/salles/:id.
func (h *SalleHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Salle not found",
		})
	}

	if err := h.salleService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrSalleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Salle not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete salle",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
