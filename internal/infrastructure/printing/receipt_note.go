// Package printing renders printable documents for warehouse paperwork
package printing

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/synergytrade/backend/internal/domain/trade"
)

// ReceiptNotePrinter renders a goods-receipt note PDF for a receiving report
type ReceiptNotePrinter struct{}

// NewReceiptNotePrinter creates a new ReceiptNotePrinter
func NewReceiptNotePrinter() *ReceiptNotePrinter {
	return &ReceiptNotePrinter{}
}

// Render produces the A4 goods-receipt note for a receiving report and its
// purchase order
func (p *ReceiptNotePrinter) Render(report *trade.ReceivingReport, order *trade.PurchaseOrder) ([]byte, error) {
	if report == nil || order == nil {
		return nil, fmt.Errorf("printing: report and order are required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Synergy Trade - Goods Receipt Note")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	header := [][2]string{
		{"Report Number", report.ReportNumber},
		{"Status", string(report.Status)},
		{"Receipt Date", report.ReceiptDate.Format("2006-01-02")},
		{"Supplier Delivery No", report.SupplierDeliveryNo},
		{"Purchase Order", order.OrderNumber},
		{"Supplier", order.SupplierName},
		{"PO Reference", order.ReferenceNo},
	}
	for _, row := range header {
		pdf.CellFormat(55, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(90, 8, "Chassis / Engine Numbers", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range report.Items {
		ids := identifierSummary(item)
		pdf.CellFormat(80, 8, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.QuantityReceived), "1", 0, "R", false, 0, "")
		pdf.CellFormat(90, 8, ids, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Units Received: %d", report.TotalQuantity()), "", 1, "L", false, 0, "")

	pdf.Ln(14)
	pdf.CellFormat(90, 7, "Received by: ____________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Checked by: ____________________", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("printing: rendering receipt note: %w", err)
	}
	return buf.Bytes(), nil
}

func identifierSummary(item trade.ReceivingReportItem) string {
	var parts []string
	if len(item.ChassisNumbers) > 0 {
		parts = append(parts, "R: "+strings.Join(item.ChassisNumbers, ", "))
	}
	if len(item.EngineNumbers) > 0 {
		parts = append(parts, "M: "+strings.Join(item.EngineNumbers, ", "))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " / ")
}
