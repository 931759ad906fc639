package report

import (
	"context"
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

type fakeProductRepo struct{ products []catalog.Product }

func (r *fakeProductRepo) FindByID(_ context.Context, _ uuid.UUID) (*catalog.Product, error) {
	return nil, shared.ErrNotFound
}
func (r *fakeProductRepo) FindByCode(_ context.Context, _ string) (*catalog.Product, error) {
	return nil, shared.ErrNotFound
}
func (r *fakeProductRepo) FindAll(_ context.Context) ([]catalog.Product, error) {
	return r.products, nil
}
func (r *fakeProductRepo) FindBelowMinStock(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0)
	for _, p := range r.products {
		if p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Save(_ context.Context, _ *catalog.Product) error { return nil }
func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeSalesOrderRepo struct{ orders []trade.SalesOrder }

func (r *fakeSalesOrderRepo) FindByID(_ context.Context, _ uuid.UUID) (*trade.SalesOrder, error) {
	return nil, shared.ErrNotFound
}
func (r *fakeSalesOrderRepo) FindAll(_ context.Context) ([]trade.SalesOrder, error) {
	return r.orders, nil
}
func (r *fakeSalesOrderRepo) FindRecent(_ context.Context, limit int) ([]trade.SalesOrder, error) {
	if len(r.orders) > limit {
		return r.orders[:limit], nil
	}
	return r.orders, nil
}
func (r *fakeSalesOrderRepo) Save(_ context.Context, _ *trade.SalesOrder) error { return nil }
func (r *fakeSalesOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

type fakeJournalRepo struct{ entries []finance.JournalEntry }

func (r *fakeJournalRepo) FindByEntryNumber(_ context.Context, _ string) (*finance.JournalEntry, error) {
	return nil, shared.ErrNotFound
}
func (r *fakeJournalRepo) FindByReference(_ context.Context, _ string) ([]finance.JournalEntry, error) {
	return nil, nil
}
func (r *fakeJournalRepo) FindAll(_ context.Context) ([]finance.JournalEntry, error) {
	return r.entries, nil
}
func (r *fakeJournalRepo) Save(_ context.Context, _ *finance.JournalEntry) error { return nil }
func (r *fakeJournalRepo) SumDebitByAccount(_ context.Context, accountID string) (decimal.Decimal, error) {
	return r.sum(accountID, true), nil
}
func (r *fakeJournalRepo) SumCreditByAccount(_ context.Context, accountID string) (decimal.Decimal, error) {
	return r.sum(accountID, false), nil
}
func (r *fakeJournalRepo) sum(accountID string, debit bool) decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.entries {
		for _, line := range e.Lines {
			if line.AccountID != accountID {
				continue
			}
			if debit {
				total = total.Add(line.Debit)
			} else {
				total = total.Add(line.Credit)
			}
		}
	}
	return total
}
func (r *fakeJournalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func TestBuildDashboard(t *testing.T) {
	ctx := context.Background()

	vario, err := catalog.NewProduct("H-VAR-160", "Honda Vario 160 ABS", "Matic", "WH-A1",
		valueobject.NewMoneyIDRFromInt(29_500_000), valueobject.NewMoneyIDRFromInt(26_000_000))
	require.NoError(t, err)
	require.NoError(t, vario.SetStock(5))
	require.NoError(t, vario.SetMinStock(10))

	beat, err := catalog.NewProduct("H-BEAT-DLX", "Honda Beat Deluxe", "Matic", "WH-A2",
		valueobject.NewMoneyIDRFromInt(18_900_000), valueobject.NewMoneyIDRFromInt(16_500_000))
	require.NoError(t, err)
	require.NoError(t, beat.SetStock(45))
	require.NoError(t, beat.SetMinStock(20))

	order, err := trade.NewSalesOrder("SO-2023-001", "Budi Santoso",
		time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = order.AddItem(beat.ID, beat.Name, 1, beat.GetPriceMoney())
	require.NoError(t, err)

	entry, err := finance.NewJournalEntry("JE-001", "Sales Revenue SO-2023-001", "SO-2023-001",
		time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), []finance.LineInput{
			{AccountID: finance.AccountCashBank, Debit: decimal.NewFromInt(18_900_000)},
			{AccountID: finance.AccountSalesRevenue, Credit: decimal.NewFromInt(18_900_000)},
		})
	require.NoError(t, err)

	svc := NewService(
		&fakeProductRepo{products: []catalog.Product{*vario, *beat}},
		&fakeSalesOrderRepo{orders: []trade.SalesOrder{*order}},
		&fakeJournalRepo{entries: []finance.JournalEntry{*entry}},
	)

	summary, err := svc.BuildDashboard(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(18_900_000)))
	assert.Equal(t, int64(50), summary.TotalStock)
	assert.Equal(t, int64(2), summary.ProductCount)
	assert.Equal(t, int64(1), summary.OrderCount)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Equal(t, int64(1), summary.JournalEntries)
	require.Len(t, summary.RecentOrders, 1)
	require.Len(t, summary.LowStockItems, 1)
	assert.Equal(t, "H-VAR-160", summary.LowStockItems[0].Code)
	assert.True(t, summary.TrialBalance.Balanced)
}
