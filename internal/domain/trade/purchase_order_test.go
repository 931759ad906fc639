package trade

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
)

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("creates open order", func(t *testing.T) {
		po, err := NewPurchaseOrder("PO-2023-100", "PT Wahana Makmur Sejati (WMS)", "WMS-SO-998877", time.Now())
		require.NoError(t, err)
		assert.Equal(t, PurchaseOrderStatusOpen, po.Status)
		assert.True(t, po.IsOpen())
		assert.True(t, po.TotalAmount.IsZero())
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := NewPurchaseOrder("", "WMS", "REF", time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects empty supplier", func(t *testing.T) {
		_, err := NewPurchaseOrder("PO-1", "", "REF", time.Now())
		assert.Error(t, err)
	})
}

func TestPurchaseOrderAddItem(t *testing.T) {
	po, err := NewPurchaseOrder("PO-2023-100", "WMS", "WMS-SO-998877", time.Now())
	require.NoError(t, err)

	t.Run("adds item and recalculates total", func(t *testing.T) {
		item, err := po.AddItem(uuid.New(), "Honda Vario 160 ABS", "H-VAR-160", 10,
			valueobject.NewMoneyIDRFromInt(26_000_000))
		require.NoError(t, err)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(260_000_000)))
		assert.True(t, po.TotalAmount.Equal(decimal.NewFromInt(260_000_000)))
	})

	t.Run("rejects invalid lines", func(t *testing.T) {
		_, err := po.AddItem(uuid.Nil, "X", "X", 1, valueobject.NewMoneyIDRFromInt(1))
		assert.Error(t, err)
		_, err = po.AddItem(uuid.New(), "X", "X", 0, valueobject.NewMoneyIDRFromInt(1))
		assert.Error(t, err)
		_, err = po.AddItem(uuid.New(), "X", "X", 1, valueobject.NewMoneyIDRFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects items after receipt", func(t *testing.T) {
		require.NoError(t, po.MarkReceived())
		_, err := po.AddItem(uuid.New(), "X", "X", 1, valueobject.NewMoneyIDRFromInt(1))
		assert.Error(t, err)
	})
}

func TestPurchaseOrderMarkReceived(t *testing.T) {
	po, err := NewPurchaseOrder("PO-2023-100", "WMS", "WMS-SO-998877", time.Now())
	require.NoError(t, err)

	require.NoError(t, po.MarkReceived())
	assert.Equal(t, PurchaseOrderStatusReceived, po.Status)
	assert.NotNil(t, po.ReceivedAt)
	assert.False(t, po.IsOpen())

	// Receiving is terminal: a second receipt must be rejected.
	err = po.MarkReceived()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, shared.ErrAlreadyPosted.Code, domainErr.Code)
}

func TestPurchaseOrderCancel(t *testing.T) {
	po, err := NewPurchaseOrder("PO-2023-100", "WMS", "WMS-SO-998877", time.Now())
	require.NoError(t, err)

	require.NoError(t, po.Cancel("supplier out of stock"))
	assert.Equal(t, PurchaseOrderStatusCancelled, po.Status)
	assert.Equal(t, "supplier out of stock", po.CancelReason)

	assert.Error(t, po.Cancel("again"))
	assert.Error(t, po.MarkReceived())
}

func TestPurchaseOrderFindItemByProduct(t *testing.T) {
	po, err := NewPurchaseOrder("PO-2023-100", "WMS", "WMS-SO-998877", time.Now())
	require.NoError(t, err)

	productID := uuid.New()
	_, err = po.AddItem(productID, "Honda Vario 160 ABS", "H-VAR-160", 10,
		valueobject.NewMoneyIDRFromInt(26_000_000))
	require.NoError(t, err)

	found := po.FindItemByProduct(productID)
	require.NotNil(t, found)
	assert.Equal(t, "H-VAR-160", found.ProductCode)

	assert.Nil(t, po.FindItemByProduct(uuid.New()))
}

func TestPurchaseOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from  PurchaseOrderStatus
		to    PurchaseOrderStatus
		valid bool
	}{
		{PurchaseOrderStatusOpen, PurchaseOrderStatusReceived, true},
		{PurchaseOrderStatusOpen, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusReceived, PurchaseOrderStatusOpen, false},
		{PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusReceived, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
