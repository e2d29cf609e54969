package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alqaim/estates-api/internal/application/service"
	"github.com/alqaim/estates-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns the headline dashboard figures
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}

// WeeklyCollection returns per-day payment totals for the current week
func (h *DashboardHandler) WeeklyCollection(c *gin.Context) {
	collection, err := h.dashboardService.GetWeeklyCollection(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Weekly collection retrieved successfully", collection)
}

// RecentPayments returns the most recent payments
func (h *DashboardHandler) RecentPayments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	payments, err := h.dashboardService.GetRecentPayments(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recent payments retrieved successfully", payments)
}
