package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-wide fallback for errors returned by handlers
// and middleware, including recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := internalErrorMessage
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only client errors expose their message.
	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled server error",
			"trace_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		captureException(c, err)
		message = internalErrorMessage
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func captureException(c *fiber.Ctx, err error) {
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}
