package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/domain/shared"
)

// ReceivingReportStatus represents the status of a receiving report
type ReceivingReportStatus string

const (
	ReceivingReportStatusDraft     ReceivingReportStatus = "DRAFT"
	ReceivingReportStatusValidated ReceivingReportStatus = "VALIDATED"
)

// IsValid checks if the status is a valid ReceivingReportStatus
func (s ReceivingReportStatus) IsValid() bool {
	return s == ReceivingReportStatusDraft || s == ReceivingReportStatusValidated
}

// ReceivingReportItem represents a physically received line, including the
// serial-like identifiers captured from the delivery document.
type ReceivingReportItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReportID         uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ProductName      string    `gorm:"type:varchar(200);not null" json:"product_name"`
	QuantityReceived int64     `gorm:"not null" json:"quantity_received"`
	ChassisNumbers   []string  `gorm:"serializer:json" json:"chassis_numbers"`
	EngineNumbers    []string  `gorm:"serializer:json" json:"engine_numbers"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (ReceivingReportItem) TableName() string {
	return "receiving_report_items"
}

// ReceivingReport represents an extracted physical receipt before it is
// committed to the ledger. It starts as DRAFT and becomes VALIDATED only
// through an explicit user confirmation, never automatically.
type ReceivingReport struct {
	shared.BaseEntity
	ReportNumber       string                `gorm:"type:varchar(50);not null;uniqueIndex" json:"report_number"`
	PurchaseOrderID    uuid.UUID             `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ReceiptDate        time.Time             `gorm:"not null" json:"receipt_date"`
	SupplierDeliveryNo string                `gorm:"type:varchar(100)" json:"supplier_delivery_no"`
	Items              []ReceivingReportItem `gorm:"foreignKey:ReportID;references:ID" json:"items"`
	Status             ReceivingReportStatus `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	ValidatedAt        *time.Time            `json:"validated_at,omitempty"`
}

// TableName returns the table name for GORM
func (ReceivingReport) TableName() string {
	return "receiving_reports"
}

// NewReceivingReport creates a new draft receiving report for a purchase order
func NewReceivingReport(reportNumber string, purchaseOrderID uuid.UUID, receiptDate time.Time, supplierDeliveryNo string) (*ReceivingReport, error) {
	if reportNumber == "" {
		return nil, shared.NewDomainError("INVALID_REPORT_NUMBER", "Report number cannot be empty")
	}
	if purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE_ORDER", "Purchase order ID cannot be empty")
	}

	return &ReceivingReport{
		BaseEntity:         shared.NewBaseEntity(),
		ReportNumber:       reportNumber,
		PurchaseOrderID:    purchaseOrderID,
		ReceiptDate:        receiptDate,
		SupplierDeliveryNo: supplierDeliveryNo,
		Items:              make([]ReceivingReportItem, 0),
		Status:             ReceivingReportStatusDraft,
	}, nil
}

// AddItem adds a received line to a draft report
func (r *ReceivingReport) AddItem(productID uuid.UUID, productName string, quantityReceived int64, chassisNumbers, engineNumbers []string) (*ReceivingReportItem, error) {
	if r.Status != ReceivingReportStatusDraft {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code, "Cannot add items to a validated receiving report")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantityReceived <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received quantity must be positive")
	}
	if chassisNumbers == nil {
		chassisNumbers = []string{}
	}
	if engineNumbers == nil {
		engineNumbers = []string{}
	}

	now := time.Now()
	item := ReceivingReportItem{
		ID:               uuid.New(),
		ReportID:         r.ID,
		ProductID:        productID,
		ProductName:      productName,
		QuantityReceived: quantityReceived,
		ChassisNumbers:   chassisNumbers,
		EngineNumbers:    engineNumbers,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	r.Items = append(r.Items, item)
	r.UpdatedAt = now

	return &r.Items[len(r.Items)-1], nil
}

// Validate marks the report as confirmed by the user. A report without
// items cannot be validated.
func (r *ReceivingReport) Validate() error {
	if r.Status == ReceivingReportStatusValidated {
		return shared.NewDomainError(shared.ErrInvalidState.Code,
			"Receiving report "+r.ReportNumber+" is already validated")
	}
	if len(r.Items) == 0 {
		return shared.NewDomainError(shared.ErrInvalidState.Code,
			"Receiving report "+r.ReportNumber+" has no items")
	}
	now := time.Now()
	r.Status = ReceivingReportStatusValidated
	r.ValidatedAt = &now
	r.UpdatedAt = now
	return nil
}

// IsValidated returns true once the user has confirmed the report
func (r *ReceivingReport) IsValidated() bool {
	return r.Status == ReceivingReportStatusValidated
}

// TotalQuantity returns the total received quantity across all lines
func (r *ReceivingReport) TotalQuantity() int64 {
	var total int64
	for _, item := range r.Items {
		total += item.QuantityReceived
	}
	return total
}
