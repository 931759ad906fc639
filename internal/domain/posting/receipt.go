// Package posting implements the procure-to-pay and order-to-cash posting
// engines. The posting functions validate every precondition before touching
// any aggregate, so a returned error means nothing was changed; on success
// the caller applies the whole result through a single transaction scope.
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

// ReceiptPostingResult is the atomic outcome of posting a receiving report:
// the received purchase order, the products with increased stock, and the
// balanced inventory-receipt journal entry. The caller must persist all of
// it together or none of it.
type ReceiptPostingResult struct {
	PurchaseOrder   *trade.PurchaseOrder
	UpdatedProducts []*catalog.Product
	JournalEntry    *finance.JournalEntry
}

// PostReceipt posts a validated receiving report against its open purchase
// order. Stock increases by the received quantities, the order becomes
// RECEIVED, and one journal entry debits Inventory Asset and credits
// Accounts Payable for the order value.
//
// The entry value comes from the purchase order's cost and quantity, never
// from the extracted document: the delivery document is a quantity and
// identity source, not a pricing source.
func PostReceipt(rr *trade.ReceivingReport, po *trade.PurchaseOrder, products map[uuid.UUID]*catalog.Product, entryNumber string, entryDate time.Time) (*ReceiptPostingResult, error) {
	if rr == nil || po == nil {
		return nil, shared.ErrInvalidInput
	}
	if rr.PurchaseOrderID != po.ID {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code,
			"Receiving report "+rr.ReportNumber+" does not belong to purchase order "+po.OrderNumber)
	}
	if !rr.IsValidated() {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code,
			"Receiving report "+rr.ReportNumber+" must be validated before posting")
	}
	if po.Status == trade.PurchaseOrderStatusReceived {
		return nil, shared.NewDomainError(shared.ErrAlreadyPosted.Code,
			"Purchase order "+po.OrderNumber+" has already been received")
	}
	if !po.IsOpen() {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code,
			"Purchase order "+po.OrderNumber+" is not open for receiving")
	}

	// Resolve every received line before mutating anything.
	updated := make([]*catalog.Product, 0, len(rr.Items))
	for _, item := range rr.Items {
		product, ok := products[item.ProductID]
		if !ok || product == nil {
			return nil, shared.NewDomainError(shared.ErrUnknownProduct.Code,
				"No product found for received item "+item.ProductName)
		}
		updated = append(updated, product)
	}

	// Value the receipt from the purchase order, line by line.
	totalValue := decimal.Zero
	for _, item := range po.Items {
		totalValue = totalValue.Add(item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)))
	}

	entry, err := finance.NewJournalEntry(
		entryNumber,
		"Inventory Receipt "+po.OrderNumber+" ("+rr.SupplierDeliveryNo+")",
		po.OrderNumber,
		entryDate,
		[]finance.LineInput{
			{AccountID: finance.AccountInventoryAsset, Debit: totalValue, Credit: decimal.Zero},
			{AccountID: finance.AccountAccountsPayable, Debit: decimal.Zero, Credit: totalValue},
		},
	)
	if err != nil {
		return nil, err
	}
	if !entry.IsBalanced() {
		return nil, shared.ErrUnbalancedEntry
	}

	// All checks passed: apply the state transitions.
	if err := po.MarkReceived(); err != nil {
		return nil, err
	}
	for i, item := range rr.Items {
		if err := updated[i].Receive(item.QuantityReceived); err != nil {
			return nil, err
		}
	}

	return &ReceiptPostingResult{
		PurchaseOrder:   po,
		UpdatedProducts: updated,
		JournalEntry:    entry,
	}, nil
}
