package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-service/internal/api/dto"
	"github.com/spec-kit/training-service/internal/service"
)

// DashboardHandler serves the aggregated statistics endpoint.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// GetStats GET /dashboard/stats.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	snapshot, err := h.service.GetStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Dashboard statistics fetched successfully", dto.FromStats(snapshot)))
}
