package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/services"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "An unexpected error occurred on the server."

// respondError writes the JSON error body for a service error.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()

	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"trace_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", errors.Unwrap(err),
			"message", msg,
		)
		captureException(c, err)
		if !errors.Is(err, services.ErrSchema) && !errors.Is(err, services.ErrStore) {
			msg = internalErrorMessage
		}
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

// paramID reads a positive integer route parameter. It returns 0 when the
// value is missing or malformed.
func paramID(c *fiber.Ctx, name string) uint {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
