package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/application/docproc"
	appposting "github.com/synergytrade/backend/internal/application/posting"
	"github.com/synergytrade/backend/internal/infrastructure/printing"
)

// maxDocumentBytes caps one scanned document read from the multipart form
const maxDocumentBytes = 15 << 20

// PurchasingHandler handles purchase orders and the goods-receiving flow
type PurchasingHandler struct {
	BaseHandler
	docs     *docproc.Service
	receipts *appposting.ReceiptService
	printer  *printing.ReceiptNotePrinter
}

// NewPurchasingHandler creates a new PurchasingHandler
func NewPurchasingHandler(docs *docproc.Service, receipts *appposting.ReceiptService, printer *printing.ReceiptNotePrinter) *PurchasingHandler {
	return &PurchasingHandler{docs: docs, receipts: receipts, printer: printer}
}

// RegisterRoutes registers purchasing routes
func (h *PurchasingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchasing := rg.Group("/purchasing")
	{
		purchasing.GET("/orders", h.ListOrders)
		purchasing.POST("/receiving/scan", h.ScanDocument)
		purchasing.POST("/receiving/manual", h.BuildManualReport)
		purchasing.POST("/receiving/confirm", h.ConfirmReceipt)
		purchasing.GET("/receiving/:id/document", h.ReceiptDocument)
	}
}

// ListOrders returns all purchase orders
func (h *PurchasingHandler) ListOrders(c *gin.Context) {
	orders, err := h.receipts.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// ScanResponse is the scan endpoint payload. An unmatched document comes
// back with matched=false and no report; resolution is up to the operator.
type ScanResponse struct {
	Matched    bool                      `json:"matched"`
	Extraction *docproc.ExtractionResult `json:"extraction"`
	Order      any                       `json:"purchase_order,omitempty"`
	Report     any                       `json:"receiving_report,omitempty"`
	StorageKey string                    `json:"storage_key,omitempty"`
}

// ScanDocument accepts a multipart delivery-note upload, runs extraction
// and PO matching and drafts a receiving report when an order matches
func (h *PurchasingHandler) ScanDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		h.BadRequest(c, "A 'document' file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read uploaded document")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes))
	if err != nil {
		h.BadRequest(c, "Could not read uploaded document")
		return
	}
	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	result, err := h.docs.ScanDeliveryDocument(c.Request.Context(), content, mimeType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := ScanResponse{
		Matched:    result.MatchedOrder != nil,
		Extraction: result.Extraction,
		StorageKey: result.StorageKey,
	}
	if result.MatchedOrder != nil {
		resp.Order = result.MatchedOrder
		resp.Report = result.Report
	}
	h.Success(c, resp)
}

// ManualReportRequest resolves an unmatched extraction to a chosen order
type ManualReportRequest struct {
	PurchaseOrderID string                   `json:"purchase_order_id" binding:"required,uuid"`
	Extraction      docproc.ExtractionResult `json:"extraction" binding:"required"`
}

// BuildManualReport drafts a receiving report against an explicitly chosen
// purchase order
func (h *PurchasingHandler) BuildManualReport(c *gin.Context) {
	var req ManualReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	poID, err := uuid.Parse(req.PurchaseOrderID)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID")
		return
	}

	report, err := h.docs.BuildManualReport(c.Request.Context(), &req.Extraction, poID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, report)
}

// ConfirmReceiptRequest identifies the draft report to validate and post
type ConfirmReceiptRequest struct {
	ReportID string `json:"report_id" binding:"required,uuid"`
}

// ConfirmReceipt validates the draft receiving report and posts it: stock
// in, inventory-asset debit, accounts-payable credit, all atomically
func (h *PurchasingHandler) ConfirmReceipt(c *gin.Context) {
	var req ConfirmReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	reportID, err := uuid.Parse(req.ReportID)
	if err != nil {
		h.BadRequest(c, "Invalid report ID")
		return
	}

	result, err := h.receipts.ConfirmAndPost(c.Request.Context(), reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ReceiptDocument renders the goods-receipt note PDF for a receiving report
func (h *PurchasingHandler) ReceiptDocument(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID")
		return
	}

	report, order, err := h.receipts.GetReceivingReportWithOrder(c.Request.Context(), reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pdf, err := h.printer.Render(report, order)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.ReportNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
