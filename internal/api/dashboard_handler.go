package api

import (
	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new instance of DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns the landing-page counts --> GET /admin/dashboard
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.dashboardService.Summary(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, summary)
}
