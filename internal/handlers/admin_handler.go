package handlers

import (
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) Signup(c *fiber.Ctx) error {
	var req dto.AdminSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.adminService.Signup(c.UserContext(), &req); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true, Message: "Admin created successfully",
	})
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.adminService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	admins, err := h.adminService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(admins)
}
