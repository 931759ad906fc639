package posting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
)

// SalePostingResult is the atomic outcome of posting a confirmed sales
// order: the shipped order, the products with reduced stock, and the two
// journal entries (revenue and cost of goods sold).
type SalePostingResult struct {
	SalesOrder      *trade.SalesOrder
	UpdatedProducts []*catalog.Product
	RevenueEntry    *finance.JournalEntry
	COGSEntry       *finance.JournalEntry
}

// PostSale posts a confirmed sales order. Stock decreases by the ordered
// quantities, the order becomes SHIPPED, and two entries are generated:
// debit Cash/Bank, credit Sales Revenue for the order total; debit Cost of
// Goods Sold, credit Inventory Asset for the inventory cost.
//
// The entire sale fails with ErrInsufficientStock when any line exceeds the
// on-hand quantity; in that case no state is changed and no entries exist.
func PostSale(order *trade.SalesOrder, products map[uuid.UUID]*catalog.Product, revenueEntryNumber, cogsEntryNumber string, entryDate time.Time) (*SalePostingResult, error) {
	if order == nil {
		return nil, shared.ErrInvalidInput
	}
	if order.Status == trade.SalesOrderStatusShipped {
		return nil, shared.NewDomainError(shared.ErrAlreadyPosted.Code,
			"Sales order "+order.OrderNumber+" has already been shipped")
	}
	if order.Status != trade.SalesOrderStatusConfirmed {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code,
			"Sales order "+order.OrderNumber+" must be confirmed before posting")
	}
	if len(order.Items) == 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code,
			"Sales order "+order.OrderNumber+" has no items")
	}

	// Resolve products and aggregate the required quantity per product, so
	// a product ordered on several lines is checked against its total
	// before anything is mutated.
	required := make(map[uuid.UUID]int64, len(order.Items))
	updated := make([]*catalog.Product, 0, len(order.Items))
	cogsAmount := decimal.Zero
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok || product == nil {
			return nil, shared.NewDomainError(shared.ErrUnknownProduct.Code,
				"No product found for ordered item "+item.ProductName)
		}
		if _, seen := required[item.ProductID]; !seen {
			updated = append(updated, product)
		}
		required[item.ProductID] += item.Quantity
		cogsAmount = cogsAmount.Add(product.Cost.Mul(decimal.NewFromInt(item.Quantity)))
	}
	for _, product := range updated {
		if !product.HasStock(required[product.ID]) {
			return nil, shared.NewDomainError(shared.ErrInsufficientStock.Code,
				"Insufficient stock for "+product.Code)
		}
	}

	revenueEntry, err := finance.NewJournalEntry(
		revenueEntryNumber,
		"Sales Revenue "+order.OrderNumber,
		order.OrderNumber,
		entryDate,
		[]finance.LineInput{
			{AccountID: finance.AccountCashBank, Debit: order.TotalAmount, Credit: decimal.Zero},
			{AccountID: finance.AccountSalesRevenue, Debit: decimal.Zero, Credit: order.TotalAmount},
		},
	)
	if err != nil {
		return nil, err
	}

	cogsEntry, err := finance.NewJournalEntry(
		cogsEntryNumber,
		"COGS Recognition "+order.OrderNumber,
		order.OrderNumber,
		entryDate,
		[]finance.LineInput{
			{AccountID: finance.AccountCostOfGoodsSold, Debit: cogsAmount, Credit: decimal.Zero},
			{AccountID: finance.AccountInventoryAsset, Debit: decimal.Zero, Credit: cogsAmount},
		},
	)
	if err != nil {
		return nil, err
	}
	if !revenueEntry.IsBalanced() || !cogsEntry.IsBalanced() {
		return nil, shared.ErrUnbalancedEntry
	}

	// All checks passed: apply the state transitions.
	for _, product := range updated {
		if err := product.Deduct(required[product.ID]); err != nil {
			return nil, err
		}
	}
	if err := order.MarkShipped(); err != nil {
		return nil, err
	}

	return &SalePostingResult{
		SalesOrder:      order,
		UpdatedProducts: updated,
		RevenueEntry:    revenueEntry,
		COGSEntry:       cogsEntry,
	}, nil
}
