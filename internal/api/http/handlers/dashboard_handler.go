package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playplanner-service/internal/api/dto"
	"github.com/spec-kit/playplanner-service/internal/service"
)

// DashboardHandler serves the landing view.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Get GET /dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	dash, err := h.service.Get(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(dto.DashboardResponse{
		Events:  dto.NewEventDtos(dash.Events),
		Classes: dto.NewClassItemDtos(dash.Classes),
	})
}
