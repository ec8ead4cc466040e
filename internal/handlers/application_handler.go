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

type ApplicationHandler struct {
	applications *services.ApplicationService
	users        *services.UserService
}

func NewApplicationHandler(applications *services.ApplicationService, users *services.UserService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, users: users}
}

// Create handles POST /scholarshipApply. The applicant is the session owner.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	applicantEmail, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	application, err := h.applications.Create(applicantEmail, &req)
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

	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: application.ID.String()})
}

// ListAll handles GET /scholarshipApply (admin/agent only).
func (h *ApplicationHandler) ListAll(c *fiber.Ctx) error {
	applications, err := h.applications.ListAll()
	if err != nil {
		slog.Error("failed to list applications", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(applications)
}

// ListByEmail handles GET /scholarshipApply/:email (owner or admin/agent).
func (h *ApplicationHandler) ListByEmail(c *fiber.Ctx) error {
	applications, err := h.applications.ListByEmail(c.Params("email"))
	if err != nil {
		slog.Error("failed to list applications", "error", err, "route", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(applications)
}

// Replace handles PUT /scholarshipApply/:id, the applicant editing their own
// submission. Ownership is checked in the service against the session email.
func (h *ApplicationHandler) Replace(c *fiber.Ctx) error {
	callerEmail, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	matched, err := h.applications.ReplaceFields(id, callerEmail, &req)
	if err != nil {
		return h.mapApplicationError(c, err)
	}
	return c.JSON(dto.ReplacedResponse{MatchedCount: matched})
}

// PatchStatus handles PATCH /scholarshipApply/:id (admin/agent only).
func (h *ApplicationHandler) PatchStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	matched, err := h.applications.PatchStatus(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Application not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(dto.ReplacedResponse{MatchedCount: matched})
}

// Delete handles DELETE /scholarshipApply/:id. Owners cancel their own;
// admins may cancel any.
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	callerEmail, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	privileged, err := h.users.HasAnyRole(callerEmail, models.RoleAdmin)
	if err != nil {
		slog.Error("role resolution failed", "error", err, "route", c.Path(), "user_email", callerEmail)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	deleted, err := h.applications.Delete(id, callerEmail, privileged)
	if err != nil {
		return h.mapApplicationError(c, err)
	}
	return c.JSON(dto.DeleteResponse{DeletedCount: deleted})
}

func (h *ApplicationHandler) mapApplicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrApplicationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Application not found",
		})
	case errors.Is(err, services.ErrNotApplicationOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "forbidden access",
		})
	default:
		slog.Error("application operation failed", "error", err, "route", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
