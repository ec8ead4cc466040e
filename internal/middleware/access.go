package middleware

import (
	"log/slog"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/identity"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// The whole authorization model is one primitive: caller email equals the
// target email, or the caller's resolved role is in the required set. Routes
// declare which guard applies in the route table; a route with no guard is an
// explicit Public decision, not an omission.

// TargetFunc extracts the resource-owner email a request is aimed at.
type TargetFunc func(c *fiber.Ctx) string

// TargetParam reads the owner email from a path parameter.
func TargetParam(name string) TargetFunc {
	return func(c *fiber.Ctx) string { return c.Params(name) }
}

// TargetQuery reads the owner email from a query parameter.
func TargetQuery(name string) TargetFunc {
	return func(c *fiber.Ctx) string { return c.Query(name) }
}

// SelfOrRole passes when the caller is the target's owner or holds one of the
// required roles. Runs after SessionProtected. Role-store failures surface as
// 500, never as a silent "no role".
func SelfOrRole(users *services.UserService, target TargetFunc, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerEmail, err := identity.Email(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if callerEmail == target(c) {
			return c.Next()
		}

		if len(roles) > 0 {
			ok, err := users.HasAnyRole(callerEmail, roles...)
			if err != nil {
				slog.Error("role resolution failed", "error", err, "route", c.Path(), "user_email", callerEmail)
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Error: true, Message: "Internal server error",
				})
			}
			if ok {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "forbidden access",
		})
	}
}

// RequireRole passes only when the caller holds one of the given roles.
func RequireRole(users *services.UserService, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerEmail, err := identity.Email(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		ok, err := users.HasAnyRole(callerEmail, roles...)
		if err != nil {
			slog.Error("role resolution failed", "error", err, "route", c.Path(), "user_email", callerEmail)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "forbidden access",
			})
		}
		return c.Next()
	}
}
