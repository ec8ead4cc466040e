package handlers

import (
	"log/slog"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SubscriberHandler struct {
	subscribers *services.SubscriberService
}

func NewSubscriberHandler(subscribers *services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscribers: subscribers}
}

// Subscribe handles POST /subscriber.
func (h *SubscriberHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscriberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	subscriber, err := h.subscribers.Subscribe(req.Email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: subscriber.ID.String()})
}

// Check handles GET /checkSubscriber?email=.
func (h *SubscriberHandler) Check(c *fiber.Ctx) error {
	subscribed, err := h.subscribers.IsSubscribed(c.Query("email"))
	if err != nil {
		slog.Error("subscriber check failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.SubscriberCheckResponse{Subscriber: subscribed})
}
