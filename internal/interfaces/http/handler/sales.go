package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appposting "github.com/synergytrade/backend/internal/application/posting"
)

// SalesHandler handles the order-to-cash endpoints
type SalesHandler struct {
	BaseHandler
	sales *appposting.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(sales *appposting.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// RegisterRoutes registers sales routes
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.GET("/orders", h.ListOrders)
		sales.POST("/orders", h.CreateOrder)
	}
}

// CreateSalesOrderRequest is one checkout request
type CreateSalesOrderRequest struct {
	CustomerName string `json:"customer_name" binding:"required,min=1,max=200"`
	ProductID    string `json:"product_id" binding:"required,uuid"`
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrder runs the audited checkout. A rejected audit returns 422 with
// the analysis and no state change.
func (h *SalesHandler) CreateOrder(c *gin.Context) {
	var req CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.sales.CreateAndPost(c.Request.Context(), appposting.CreateSalesOrderInput{
		CustomerName: req.CustomerName,
		ProductID:    productID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if !result.Posted {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"data":    result,
			"error": gin.H{
				"code":    "AUDIT_REJECTED",
				"message": result.Audit.Analysis,
			},
		})
		return
	}
	h.Created(c, result)
}

// ListOrders returns all sales orders
func (h *SalesHandler) ListOrders(c *gin.Context) {
	orders, err := h.sales.ListOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}
