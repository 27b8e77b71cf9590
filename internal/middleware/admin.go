package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/config"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminRequired guards the admin panel routes. A request passes with the
// configured X-Admin-Token, or with an admin JWT whose role is listed in
// ADMIN_ROLES. Any signed admin token passes when ADMIN_ROLES is empty.
func AdminRequired(cfg *config.Config) fiber.Handler {
	roles := parseCSV(cfg.AdminRoles)

	checkRole := func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		role, _ := claims["role"].(string)
		if role == "" || (len(roles) > 0 && !containsFold(roles, role)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
	verify := jwtware.New(jwtConfig(cfg, checkRole))

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}
		return verify(c)
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func containsFold(list []string, val string) bool {
	for _, item := range list {
		if strings.EqualFold(item, val) {
			return true
		}
	}
	return false
}
