package posting

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
	"github.com/synergytrade/backend/internal/domain/trade"
)

type receiptFixture struct {
	product *catalog.Product
	po      *trade.PurchaseOrder
	rr      *trade.ReceivingReport
}

func newReceiptFixture(t *testing.T) receiptFixture {
	t.Helper()

	product, err := catalog.NewProduct("H-VAR-160", "Honda Vario 160 ABS", "Matic", "WH-A1",
		valueobject.NewMoneyIDRFromInt(29_500_000), valueobject.NewMoneyIDRFromInt(26_000_000))
	require.NoError(t, err)
	require.NoError(t, product.SetStock(5))

	po, err := trade.NewPurchaseOrder("PO-2023-100", "PT Wahana Makmur Sejati (WMS)",
		"WMS-SO-998877", time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = po.AddItem(product.ID, product.Name, product.Code, 10, product.GetCostMoney())
	require.NoError(t, err)

	rr, err := trade.NewReceivingReport("RR-20231028-AB12CD34", po.ID,
		time.Date(2023, 10, 28, 0, 0, 0, 0, time.UTC), "SJ/2023/10/1234")
	require.NoError(t, err)
	_, err = rr.AddItem(product.ID, product.Name, 10, nil, nil)
	require.NoError(t, err)
	require.NoError(t, rr.Validate())

	return receiptFixture{product: product, po: po, rr: rr}
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr), "expected a domain error, got %v", err)
	return domainErr.Code
}

func TestPostReceipt(t *testing.T) {
	now := time.Now()

	t.Run("posts receipt against open order", func(t *testing.T) {
		f := newReceiptFixture(t)
		products := map[uuid.UUID]*catalog.Product{f.product.ID: f.product}

		result, err := PostReceipt(f.rr, f.po, products, "JE-20231028-3F2A9B1C", now)
		require.NoError(t, err)

		assert.Equal(t, trade.PurchaseOrderStatusReceived, result.PurchaseOrder.Status)
		assert.Equal(t, int64(15), f.product.Stock, "5 on hand + 10 received")

		entry := result.JournalEntry
		require.Len(t, entry.Lines, 2)
		assert.Equal(t, finance.AccountInventoryAsset, entry.Lines[0].AccountID)
		assert.True(t, entry.Lines[0].Debit.Equal(decimal.NewFromInt(260_000_000)))
		assert.Equal(t, finance.AccountAccountsPayable, entry.Lines[1].AccountID)
		assert.True(t, entry.Lines[1].Credit.Equal(decimal.NewFromInt(260_000_000)))
		assert.True(t, entry.IsBalanced())
		assert.Equal(t, "PO-2023-100", entry.Reference)
	})

	t.Run("rejects draft report", func(t *testing.T) {
		f := newReceiptFixture(t)
		draft, err := trade.NewReceivingReport("RR-2", f.po.ID, now, "SJ-2")
		require.NoError(t, err)
		_, err = draft.AddItem(f.product.ID, f.product.Name, 10, nil, nil)
		require.NoError(t, err)

		_, err = PostReceipt(draft, f.po, map[uuid.UUID]*catalog.Product{f.product.ID: f.product}, "JE-1", now)
		require.Error(t, err)
		assert.Equal(t, shared.ErrInvalidState.Code, domainCode(t, err))
		assert.True(t, f.po.IsOpen(), "order untouched on failure")
		assert.Equal(t, int64(5), f.product.Stock)
	})

	t.Run("rejects double posting", func(t *testing.T) {
		f := newReceiptFixture(t)
		products := map[uuid.UUID]*catalog.Product{f.product.ID: f.product}

		_, err := PostReceipt(f.rr, f.po, products, "JE-1", now)
		require.NoError(t, err)

		_, err = PostReceipt(f.rr, f.po, products, "JE-2", now)
		require.Error(t, err)
		assert.Equal(t, shared.ErrAlreadyPosted.Code, domainCode(t, err))
		assert.Equal(t, int64(15), f.product.Stock, "stock credited exactly once")
	})

	t.Run("rejects unknown product without touching state", func(t *testing.T) {
		f := newReceiptFixture(t)

		_, err := PostReceipt(f.rr, f.po, map[uuid.UUID]*catalog.Product{}, "JE-1", now)
		require.Error(t, err)
		assert.Equal(t, shared.ErrUnknownProduct.Code, domainCode(t, err))
		assert.True(t, f.po.IsOpen())
		assert.Equal(t, int64(5), f.product.Stock)
	})

	t.Run("rejects report for a different order", func(t *testing.T) {
		f := newReceiptFixture(t)
		other, err := trade.NewPurchaseOrder("PO-2023-101", "WMS", "WMS-SO-112233", now)
		require.NoError(t, err)

		_, err = PostReceipt(f.rr, other, map[uuid.UUID]*catalog.Product{f.product.ID: f.product}, "JE-1", now)
		require.Error(t, err)
		assert.Equal(t, shared.ErrInvalidInput.Code, domainCode(t, err))
	})

	t.Run("rejects cancelled order", func(t *testing.T) {
		f := newReceiptFixture(t)
		require.NoError(t, f.po.Cancel("supplier issue"))

		_, err := PostReceipt(f.rr, f.po, map[uuid.UUID]*catalog.Product{f.product.ID: f.product}, "JE-1", now)
		require.Error(t, err)
		assert.Equal(t, shared.ErrInvalidState.Code, domainCode(t, err))
	})

	t.Run("rejects nil inputs", func(t *testing.T) {
		f := newReceiptFixture(t)
		_, err := PostReceipt(nil, f.po, nil, "JE-1", now)
		assert.Error(t, err)
		_, err = PostReceipt(f.rr, nil, nil, "JE-1", now)
		assert.Error(t, err)
	})
}
