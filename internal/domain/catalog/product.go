package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
)

// Product represents a sellable unit in the catalog.
// Stock is mutated only through Receive and Deduct so the
// stock >= 0 invariant holds after every posting.
type Product struct {
	shared.BaseEntity
	Code     string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Name     string          `gorm:"type:varchar(200);not null" json:"name"`
	Category string          `gorm:"type:varchar(100)" json:"category"`
	Location string          `gorm:"type:varchar(50)" json:"location"`
	Stock    int64           `gorm:"not null;default:0" json:"stock"`
	MinStock int64           `gorm:"not null;default:0" json:"min_stock"`
	Price    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Cost     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"cost"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, category, location string, price, cost valueobject.Money) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Category:   category,
		Location:   location,
		Stock:      0,
		MinStock:   0,
		Price:      price.Amount(),
		Cost:       cost.Amount(),
	}, nil
}

// SetMinStock sets the reorder threshold
func (p *Product) SetMinStock(minStock int64) error {
	if minStock < 0 {
		return shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock cannot be negative")
	}
	p.MinStock = minStock
	p.UpdatedAt = time.Now()
	return nil
}

// SetStock overrides the on-hand quantity. Intended for initial loading only;
// postings must go through Receive and Deduct.
func (p *Product) SetStock(stock int64) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// HasStock returns true if at least quantity units are on hand
func (p *Product) HasStock(quantity int64) bool {
	return p.Stock >= quantity
}

// Receive increases the on-hand quantity
func (p *Product) Receive(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Receive quantity must be positive")
	}
	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// Deduct decreases the on-hand quantity.
// Returns ErrInsufficientStock if the deduction would go negative.
func (p *Product) Deduct(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Deduct quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.NewDomainError(shared.ErrInsufficientStock.Code,
			fmt.Sprintf("Insufficient stock for %s: have %d, need %d", p.Code, p.Stock, quantity))
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// IsBelowMinStock returns true if the on-hand quantity is below the reorder threshold
func (p *Product) IsBelowMinStock() bool {
	return p.Stock < p.MinStock
}

// GetPriceMoney returns the sell price as a Money value object
func (p *Product) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyIDR(p.Price)
}

// GetCostMoney returns the unit cost as a Money value object
func (p *Product) GetCostMoney() valueobject.Money {
	return valueobject.NewMoneyIDR(p.Cost)
}
