package printing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
	"github.com/synergytrade/backend/internal/domain/trade"
)

func TestRenderReceiptNote(t *testing.T) {
	printer := NewReceiptNotePrinter()

	po, err := trade.NewPurchaseOrder("PO-2023-100", "PT Wahana Makmur Sejati (WMS)",
		"WMS-SO-998877", time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	productID := uuid.New()
	_, err = po.AddItem(productID, "Honda Vario 160 ABS", "H-VAR-160", 10,
		valueobject.NewMoneyIDRFromInt(26_000_000))
	require.NoError(t, err)

	report, err := trade.NewReceivingReport("RR-20231028-AB12CD34", po.ID,
		time.Date(2023, 10, 28, 0, 0, 0, 0, time.UTC), "SJ/2023/10/1234")
	require.NoError(t, err)
	_, err = report.AddItem(productID, "Honda Vario 160 ABS", 10,
		[]string{"MH1KF1110PK123456"}, []string{"KF11E1234567"})
	require.NoError(t, err)

	t.Run("renders a PDF", func(t *testing.T) {
		data, err := printer.Render(report, po)
		require.NoError(t, err)
		require.NotEmpty(t, data)
		assert.Equal(t, "%PDF", string(data[:4]))
	})

	t.Run("rejects missing inputs", func(t *testing.T) {
		_, err := printer.Render(nil, po)
		assert.Error(t, err)
		_, err = printer.Render(report, nil)
		assert.Error(t, err)
	})
}

func TestIdentifierSummary(t *testing.T) {
	tests := []struct {
		name string
		item trade.ReceivingReportItem
		want string
	}{
		{
			"chassis and engine",
			trade.ReceivingReportItem{ChassisNumbers: []string{"A1", "A2"}, EngineNumbers: []string{"B1"}},
			"R: A1, A2 / M: B1",
		},
		{
			"chassis only",
			trade.ReceivingReportItem{ChassisNumbers: []string{"A1"}},
			"R: A1",
		},
		{
			"no identifiers",
			trade.ReceivingReportItem{},
			"-",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identifierSummary(tt.item))
		})
	}
}
