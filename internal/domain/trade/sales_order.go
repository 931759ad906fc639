package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
)

// SalesOrderStatus represents the status of a sales order
type SalesOrderStatus string

const (
	SalesOrderStatusDraft     SalesOrderStatus = "DRAFT"
	SalesOrderStatusConfirmed SalesOrderStatus = "CONFIRMED"
	SalesOrderStatusShipped   SalesOrderStatus = "SHIPPED"
)

// IsValid checks if the status is a valid SalesOrderStatus
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderStatusDraft, SalesOrderStatusConfirmed, SalesOrderStatusShipped:
		return true
	}
	return false
}

// String returns the string representation of SalesOrderStatus
func (s SalesOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SalesOrderStatus) CanTransitionTo(target SalesOrderStatus) bool {
	switch s {
	case SalesOrderStatusDraft:
		return target == SalesOrderStatusConfirmed
	case SalesOrderStatusConfirmed:
		return target == SalesOrderStatusShipped
	case SalesOrderStatusShipped:
		return false // Terminal state
	}
	return false
}

// PaymentStatus represents how much of a sales order has been paid
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

// SalesOrderItem represents a line item in a sales order
type SalesOrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName string          `gorm:"type:varchar(200);not null" json:"product_name"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}

// SalesOrder represents a customer order. Orders are created once per
// checkout and are immutable after confirmation; there is no amendment flow.
type SalesOrder struct {
	shared.BaseEntity
	OrderNumber   string           `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	OrderDate     time.Time        `gorm:"not null" json:"order_date"`
	CustomerName  string           `gorm:"type:varchar(200);not null" json:"customer_name"`
	Items         []SalesOrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items"`
	TotalAmount   decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status        SalesOrderStatus `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	PaymentStatus PaymentStatus    `gorm:"type:varchar(20);not null;default:'UNPAID'" json:"payment_status"`
	ShippedAt     *time.Time       `json:"shipped_at,omitempty"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// NewSalesOrder creates a new draft sales order
func NewSalesOrder(orderNumber, customerName string, orderDate time.Time) (*SalesOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}

	return &SalesOrder{
		BaseEntity:    shared.NewBaseEntity(),
		OrderNumber:   orderNumber,
		OrderDate:     orderDate,
		CustomerName:  customerName,
		Items:         make([]SalesOrderItem, 0),
		TotalAmount:   decimal.Zero,
		Status:        SalesOrderStatusDraft,
		PaymentStatus: PaymentStatusUnpaid,
	}, nil
}

// AddItem adds a line item to a draft sales order and recalculates the total
func (o *SalesOrder) AddItem(productID uuid.UUID, productName string, quantity int64, unitPrice valueobject.Money) (*SalesOrderItem, error) {
	if o.Status != SalesOrderStatusDraft {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code, "Cannot add items to a confirmed sales order")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	item := SalesOrderItem{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		Amount:      unitPrice.Amount().Mul(decimal.NewFromInt(quantity)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	o.Items = append(o.Items, item)
	o.recalculateTotal()
	o.UpdatedAt = now

	return &o.Items[len(o.Items)-1], nil
}

// recalculateTotal recomputes TotalAmount from line amounts
func (o *SalesOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.TotalAmount = total
}

// Confirm transitions the order to CONFIRMED. Requires at least one item.
func (o *SalesOrder) Confirm() error {
	if len(o.Items) == 0 {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "Cannot confirm an empty sales order")
	}
	if !o.Status.CanTransitionTo(SalesOrderStatusConfirmed) {
		return shared.NewDomainError(shared.ErrInvalidState.Code,
			"Sales order "+o.OrderNumber+" cannot be confirmed in status "+o.Status.String())
	}
	o.Status = SalesOrderStatusConfirmed
	o.UpdatedAt = time.Now()
	return nil
}

// MarkShipped transitions the order to SHIPPED (terminal)
func (o *SalesOrder) MarkShipped() error {
	if o.Status == SalesOrderStatusShipped {
		return shared.NewDomainError(shared.ErrAlreadyPosted.Code,
			"Sales order "+o.OrderNumber+" has already been shipped")
	}
	if !o.Status.CanTransitionTo(SalesOrderStatusShipped) {
		return shared.NewDomainError(shared.ErrInvalidState.Code,
			"Sales order "+o.OrderNumber+" cannot be shipped in status "+o.Status.String())
	}
	now := time.Now()
	o.Status = SalesOrderStatusShipped
	o.ShippedAt = &now
	o.UpdatedAt = now
	return nil
}

// MarkPaid records full payment for the order
func (o *SalesOrder) MarkPaid() {
	o.PaymentStatus = PaymentStatusPaid
	o.UpdatedAt = time.Now()
}

// MarkPartiallyPaid records a partial payment for the order
func (o *SalesOrder) MarkPartiallyPaid() {
	o.PaymentStatus = PaymentStatusPartial
	o.UpdatedAt = time.Now()
}

// GetTotalMoney returns the order total as a Money value object
func (o *SalesOrder) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyIDR(o.TotalAmount)
}
