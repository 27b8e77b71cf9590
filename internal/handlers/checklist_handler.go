package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChecklistHandler struct {
	checklistService *services.ChecklistService
}

func NewChecklistHandler(checklistService *services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

func (h *ChecklistHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateChecklistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.checklistService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List accepts an optional property_id query filter.
func (h *ChecklistHandler) List(c *fiber.Ctx) error {
	var propertyID uint
	if raw := c.Query("property_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return badRequest(c, "property_id must be a positive integer")
		}
		propertyID = uint(id)
	}

	items, err := h.checklistService.List(c.UserContext(), propertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
