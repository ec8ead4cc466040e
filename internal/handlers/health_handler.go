package handlers

import (
	"time"

	"github.com/arscholarpoint/scholarpoint-server/internal/database"
	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles GET /, the original liveness text.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Server is running...")
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
