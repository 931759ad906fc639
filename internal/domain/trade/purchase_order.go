package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusOpen      PurchaseOrderStatus = "OPEN"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusOpen, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusOpen:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName string          `gorm:"type:varchar(200);not null" json:"product_name"`
	ProductCode string          `gorm:"type:varchar(50)" json:"product_code"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_cost"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// PurchaseOrder represents a supplier order awaiting receipt.
// It transitions Open -> Received exactly once, triggered by a
// validated receiving report, or Open -> Cancelled.
type PurchaseOrder struct {
	shared.BaseEntity
	OrderNumber  string              `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	SupplierName string              `gorm:"type:varchar(200);not null" json:"supplier_name"`
	OrderDate    time.Time           `gorm:"not null" json:"order_date"`
	ExpectedDate *time.Time          `json:"expected_date,omitempty"`
	ReferenceNo  string              `gorm:"type:varchar(100);index" json:"reference_no"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	ReceivedAt   *time.Time          `json:"received_at,omitempty"`
	CancelledAt  *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason string              `gorm:"type:varchar(500)" json:"cancel_reason,omitempty"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new open purchase order
func NewPurchaseOrder(orderNumber, supplierName, referenceNo string, orderDate time.Time) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier name cannot be empty")
	}

	return &PurchaseOrder{
		BaseEntity:   shared.NewBaseEntity(),
		OrderNumber:  orderNumber,
		SupplierName: supplierName,
		OrderDate:    orderDate,
		ReferenceNo:  referenceNo,
		Items:        make([]PurchaseOrderItem, 0),
		TotalAmount:  decimal.Zero,
		Status:       PurchaseOrderStatusOpen,
	}, nil
}

// AddItem adds a line item to an open purchase order and recalculates the total
func (o *PurchaseOrder) AddItem(productID uuid.UUID, productName, productCode string, quantity int64, unitCost valueobject.Money) (*PurchaseOrderItem, error) {
	if o.Status != PurchaseOrderStatusOpen {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code, "Cannot add items to a non-open purchase order")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	now := time.Now()
	item := PurchaseOrderItem{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		ProductCode: productCode,
		Quantity:    quantity,
		UnitCost:    unitCost.Amount(),
		Amount:      unitCost.Amount().Mul(decimal.NewFromInt(quantity)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	o.Items = append(o.Items, item)
	o.recalculateTotal()
	o.UpdatedAt = now

	return &o.Items[len(o.Items)-1], nil
}

// recalculateTotal recomputes TotalAmount from line amounts
func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.TotalAmount = total
}

// MarkReceived transitions the order to RECEIVED. The transition is terminal;
// a second call fails with ErrAlreadyPosted so a receipt can never be
// credited twice against the same order.
func (o *PurchaseOrder) MarkReceived() error {
	if o.Status == PurchaseOrderStatusReceived {
		return shared.NewDomainError(shared.ErrAlreadyPosted.Code,
			"Purchase order "+o.OrderNumber+" has already been received")
	}
	if !o.Status.CanTransitionTo(PurchaseOrderStatusReceived) {
		return shared.NewDomainError(shared.ErrInvalidState.Code,
			"Purchase order "+o.OrderNumber+" cannot be received in status "+o.Status.String())
	}
	now := time.Now()
	o.Status = PurchaseOrderStatusReceived
	o.ReceivedAt = &now
	o.UpdatedAt = now
	return nil
}

// Cancel transitions the order to CANCELLED
func (o *PurchaseOrder) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusCancelled) {
		return shared.NewDomainError(shared.ErrInvalidState.Code,
			"Purchase order "+o.OrderNumber+" cannot be cancelled in status "+o.Status.String())
	}
	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now
	return nil
}

// IsOpen returns true if the order is still awaiting receipt
func (o *PurchaseOrder) IsOpen() bool {
	return o.Status == PurchaseOrderStatusOpen
}

// FindItemByProduct returns the line item for the given product, or nil
func (o *PurchaseOrder) FindItemByProduct(productID uuid.UUID) *PurchaseOrderItem {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i]
		}
	}
	return nil
}

// GetTotalMoney returns the order total as a Money value object
func (o *PurchaseOrder) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyIDR(o.TotalAmount)
}
