package middleware

import (
	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// SessionProtected verifies the bearer session credential. Absent, malformed,
// or signature/expiry-invalid tokens all map to 401; a valid token leaves the
// claim in locals for identity.Email.
func SessionProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
