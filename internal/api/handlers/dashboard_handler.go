package handlers

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/internal/api/presenters"
	"BulkBlitz-Backend/pkg/dashboard"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	DashboardHandler interface {
		GetWeeklyOverview(c *fiber.Ctx) error
		GetWeeklyProgress(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

func dashboardError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrParseUUID) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}
	log.Errorf("dashboard: %v", err)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboard, nil)
}

func (h *dashboardHandler) GetWeeklyOverview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.dashboardService.WeeklyOverview(c.Context(), userID)
	if err != nil {
		return dashboardError(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetWeeklyProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.dashboardService.WeeklyProgress(c.Context(), userID)
	if err != nil {
		return dashboardError(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.dashboardService.Summary(c.Context(), userID)
	if err != nil {
		return dashboardError(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
