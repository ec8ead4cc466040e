package handlers

import (
	"errors"
	"log/slog"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/identity"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent handles POST /create-payment-intent. The processor call is
// synchronous; failures surface as 502 with no retry.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	intent, err := h.payments.CreateIntent(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("payment intent creation failed", "error", err, "route", c.Path())
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Payment processor error",
		})
	}

	return c.JSON(dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// Record handles POST /payments. The owning email is the session owner.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	email, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	payment, err := h.payments.Record(email, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to record payment", "error", err, "user_email", email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: payment.ID.String()})
}

// ListByEmail handles GET /payments/:email (owner only).
func (h *PaymentHandler) ListByEmail(c *fiber.Ctx) error {
	payments, err := h.payments.ListByEmail(c.Params("email"))
	if err != nil {
		slog.Error("failed to list payments", "error", err, "route", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(payments)
}
