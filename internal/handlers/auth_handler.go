package handlers

import (
	"log/slog"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessions *services.SessionService
}

func NewAuthHandler(sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// IssueSession handles POST /jwt. The body is an identity claim; the response
// carries the bearer credential for the client to replay on guarded routes.
func (h *AuthHandler) IssueSession(c *fiber.Ctx) error {
	var req dto.SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "email is required",
		})
	}

	token, err := h.sessions.IssueSession(&req)
	if err != nil {
		slog.Error("failed to issue session", "error", err, "user_email", req.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.SessionResponse{Success: true, Token: token})
}

// Logout handles POST /logout. Bearer credentials hold no server-side state,
// so this only acknowledges; the client discards its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{Success: true})
}
