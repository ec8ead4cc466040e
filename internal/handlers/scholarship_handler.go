package handlers

import (
	"errors"
	"log/slog"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/identity"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ScholarshipHandler struct {
	scholarships *services.ScholarshipService
	categories   *services.CategoryService
}

func NewScholarshipHandler(scholarships *services.ScholarshipService, categories *services.CategoryService) *ScholarshipHandler {
	return &ScholarshipHandler{scholarships: scholarships, categories: categories}
}

// List handles GET /scholarships.
func (h *ScholarshipHandler) List(c *fiber.Ctx) error {
	scholarships, err := h.scholarships.List()
	if err != nil {
		slog.Error("failed to list scholarships", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(scholarships)
}

// ListPage handles GET /scholarshipsLimit?page&size&filterQty.
func (h *ScholarshipHandler) ListPage(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	filterQty := c.Query("filterQty")

	scholarships, err := h.scholarships.ListPage(page, size, filterQty)
	if err != nil {
		slog.Error("failed to list scholarships", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(scholarships)
}

// Count handles GET /scholarshipsCount?filterQty.
func (h *ScholarshipHandler) Count(c *fiber.Ctx) error {
	count, err := h.scholarships.Count(c.Query("filterQty"))
	if err != nil {
		slog.Error("failed to count scholarships", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.CountResponse{Count: count})
}

// Get handles GET /scholarship/:id.
func (h *ScholarshipHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid scholarship ID",
		})
	}

	scholarship, err := h.scholarships.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrScholarshipNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Scholarship not found",
			})
		}
		slog.Error("failed to get scholarship", "error", err, "route", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(scholarship)
}

// Create handles POST /scholarships (admin/agent only).
func (h *ScholarshipHandler) Create(c *fiber.Ctx) error {
	postedBy, err := identity.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	scholarship, err := h.scholarships.Create(postedBy, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: scholarship.ID.String()})
}

// Replace handles PUT /scholarship/:id (admin/agent only, allowlist replace).
func (h *ScholarshipHandler) Replace(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid scholarship ID",
		})
	}

	var req dto.ScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	matched, err := h.scholarships.ReplaceFields(id, &req)
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

	return c.JSON(dto.ReplacedResponse{MatchedCount: matched})
}

// Delete handles DELETE /scholarship/:id (admin/agent only).
func (h *ScholarshipHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid scholarship ID",
		})
	}

	deleted, err := h.scholarships.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrScholarshipNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Scholarship not found",
			})
		}
		slog.Error("failed to delete scholarship", "error", err, "route", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.DeleteResponse{DeletedCount: deleted})
}

// ListCategories handles GET /category.
func (h *ScholarshipHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.List()
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(categories)
}

// CreateCategory handles POST /category (admin/agent only).
func (h *ScholarshipHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	category, err := h.categories.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: category.ID.String()})
}
