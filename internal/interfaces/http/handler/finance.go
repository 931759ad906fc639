package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appfinance "github.com/synergytrade/backend/internal/application/finance"
)

// FinanceHandler exposes the ledger read endpoints
type FinanceHandler struct {
	BaseHandler
	finance *appfinance.Service
	logger  *zap.Logger
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(finance *appfinance.Service, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{finance: finance, logger: logger}
}

// RegisterRoutes registers the finance routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	finance := rg.Group("/finance")
	{
		finance.GET("/journal-entries", h.ListJournalEntries)
		finance.GET("/trial-balance", h.GetTrialBalance)
	}
}

// ListJournalEntries returns all journal entries, newest first
func (h *FinanceHandler) ListJournalEntries(c *gin.Context) {
	entries, err := h.finance.ListJournalEntries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// GetTrialBalance returns the aggregated trial balance
func (h *FinanceHandler) GetTrialBalance(c *gin.Context) {
	tb, err := h.finance.GetTrialBalance(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tb)
}
