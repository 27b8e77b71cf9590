package handlers

import (
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "User registered successfully",
		ID:      id,
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.UserLoginResponse{
		Message: "Login successful",
		User:    *user,
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// UpdateStatus toggles the user's status, or sets it when the body names one.
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := req.ID
	if id == 0 {
		id = req.UserID
	}

	var (
		status models.AccountStatus
		err    error
	)
	if req.Status == "" {
		status, err = h.userService.ToggleStatus(c.UserContext(), id)
	} else {
		target, ok := models.ParseAccountStatus(req.Status)
		if !ok {
			return badRequest(c, "status must be one of: Active, Blocked")
		}
		status, err = h.userService.SetStatus(c.UserContext(), id, target)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.UpdateStatusResponse{
		Message:   "User status updated to " + string(status),
		NewStatus: status,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "Valid user ID is required.")
	}

	if err := h.userService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "User removed successfully"})
}
