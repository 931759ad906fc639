package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appinventory "github.com/synergytrade/backend/internal/application/inventory"
)

// InventoryHandler handles inventory query endpoints
type InventoryHandler struct {
	BaseHandler
	service *appinventory.Service
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *appinventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("/products", h.ListProducts)
		inventory.GET("/products/:id", h.GetProduct)
		inventory.GET("/low-stock", h.ListLowStock)
	}
}

// ListProducts returns the full catalog
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetProduct returns one product
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListLowStock returns products at or below their minimum stock level
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	products, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}
