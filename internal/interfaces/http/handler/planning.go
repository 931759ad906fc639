package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appplanning "github.com/synergytrade/backend/internal/application/planning"
)

// PlanningHandler exposes the demand forecasting endpoint
type PlanningHandler struct {
	BaseHandler
	planning *appplanning.Service
	logger   *zap.Logger
}

// NewPlanningHandler creates a new PlanningHandler
func NewPlanningHandler(planning *appplanning.Service, logger *zap.Logger) *PlanningHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanningHandler{planning: planning, logger: logger}
}

// RegisterRoutes registers the planning routes
func (h *PlanningHandler) RegisterRoutes(rg *gin.RouterGroup) {
	planning := rg.Group("/planning")
	{
		planning.POST("/forecast", h.RunForecast)
	}
}

// RunForecast produces ordering advice for the current inventory. The
// result is advisory only; nothing is written to the store.
func (h *PlanningHandler) RunForecast(c *gin.Context) {
	forecasts, err := h.planning.RunForecast(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, forecasts)
}
