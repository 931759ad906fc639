package handler

import (
	"github.com/gin-gonic/gin"

	appreport "github.com/synergytrade/backend/internal/application/report"
)

// DashboardHandler exposes the dashboard summary endpoint
type DashboardHandler struct {
	BaseHandler
	reports *appreport.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(reports *appreport.Service) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/summary", h.Summary)
}

// Summary returns the aggregated dashboard figures
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.reports.BuildDashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
