package handlers

import (
	"errors"
	"log/slog"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/identity"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviews *services.ReviewService
	users   *services.UserService
}

func NewReviewHandler(reviews *services.ReviewService, users *services.UserService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, users: users}
}

// List handles GET /reviews, optionally filtered by ?scholarshipId=.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	var scholarshipID *uuid.UUID
	if raw := c.Query("scholarshipId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid scholarship ID",
			})
		}
		scholarshipID = &id
	}

	reviews, err := h.reviews.List(scholarshipID)
	if err != nil {
		slog.Error("failed to list reviews", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(reviews)
}

// ListByReviewer handles GET /review/:email (owner only).
func (h *ReviewHandler) ListByReviewer(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListByReviewer(c.Params("email"))
	if err != nil {
		slog.Error("failed to list reviews", "error", err, "route", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(reviews)
}

// Create handles POST /reviews. The reviewer is the session owner.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	reviewerEmail, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	review, err := h.reviews.Create(reviewerEmail, &req)
	if err != nil {
		if errors.Is(err, services.ErrScholarshipNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Scholarship not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: review.ID.String()})
}

// Replace handles PUT /review/:id (owner only, allowlist replace).
func (h *ReviewHandler) Replace(c *fiber.Ctx) error {
	callerEmail, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	matched, err := h.reviews.ReplaceFields(id, callerEmail, &req)
	if err != nil {
		return h.mapReviewError(c, err)
	}
	return c.JSON(dto.ReplacedResponse{MatchedCount: matched})
}

// Delete handles DELETE /review/:id. Owners delete their own; admins any.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	callerEmail, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	privileged, err := h.users.HasAnyRole(callerEmail, models.RoleAdmin)
	if err != nil {
		slog.Error("role resolution failed", "error", err, "route", c.Path(), "user_email", callerEmail)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	deleted, err := h.reviews.Delete(id, callerEmail, privileged)
	if err != nil {
		return h.mapReviewError(c, err)
	}
	return c.JSON(dto.DeleteResponse{DeletedCount: deleted})
}

func (h *ReviewHandler) mapReviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrReviewNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Review not found",
		})
	case errors.Is(err, services.ErrNotReviewOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "forbidden access",
		})
	default:
		slog.Error("review operation failed", "error", err, "route", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
