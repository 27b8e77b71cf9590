package handlers

import (
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	property, err := h.propertyService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	properties, err := h.propertyService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(properties)
}

func (h *PropertyHandler) ListOverview(c *fiber.Ctx) error {
	properties, err := h.propertyService.ListOverview(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(properties)
}

func (h *PropertyHandler) ListMobile(c *fiber.Ctx) error {
	properties, err := h.propertyService.ListMobile(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(properties)
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Valid property ID is required.")
	}

	property, err := h.propertyService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Valid property ID is required.")
	}

	if err := h.propertyService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Property deleted successfully."})
}
