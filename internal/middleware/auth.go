package middleware

import (
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/config"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// jwtConfig verifies an HS256 bearer token, stores it under "user" and
// hands off to next.
func jwtConfig(cfg *config.Config, next fiber.Handler) jwtware.Config {
	return jwtware.Config{
		SigningKey:     jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		SuccessHandler: next,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	}
}
