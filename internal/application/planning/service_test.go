package planning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/planning"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
	"github.com/synergytrade/backend/internal/domain/trade"
)

type fakeForecaster struct {
	forecasts []planning.Forecast
	err       error

	gotInventory []StockSnapshot
	gotSales     []SalesSample
}

func (f *fakeForecaster) ForecastDemand(_ context.Context, inventory []StockSnapshot, recentSales []SalesSample) ([]planning.Forecast, error) {
	f.gotInventory = inventory
	f.gotSales = recentSales
	if f.err != nil {
		return nil, f.err
	}
	return f.forecasts, nil
}

type fakeProductRepo struct {
	products []catalog.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByCode(_ context.Context, _ string) (*catalog.Product, error) {
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]catalog.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) FindBelowMinStock(_ context.Context) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Save(_ context.Context, _ *catalog.Product) error { return nil }

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeSalesOrderRepo struct {
	orders []trade.SalesOrder
}

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

func seedFixture(t *testing.T) (*catalog.Product, trade.SalesOrder) {
	t.Helper()

	product, err := catalog.NewProduct("H-VAR-160", "Honda Vario 160 ABS", "Matic", "WH-A1",
		valueobject.NewMoneyIDRFromInt(29_500_000), valueobject.NewMoneyIDRFromInt(26_000_000))
	require.NoError(t, err)
	require.NoError(t, product.SetStock(5))
	require.NoError(t, product.SetMinStock(10))

	order, err := trade.NewSalesOrder("SO-2023-002", "CV Maju Jaya",
		time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = order.AddItem(product.ID, product.Name, 2, product.GetPriceMoney())
	require.NoError(t, err)

	return product, *order
}

func TestRunForecast(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles snapshots and returns advice", func(t *testing.T) {
		product, order := seedFixture(t)
		forecaster := &fakeForecaster{forecasts: []planning.Forecast{{
			ProductID:       product.ID,
			ProductName:     product.Name,
			CurrentStock:    5,
			PredictedDemand: 12,
			SuggestedOrder:  17,
			Reasoning:       "Stock is below the reorder threshold with steady demand.",
			Urgency:         planning.UrgencyHigh,
		}}}

		svc := NewService(forecaster,
			&fakeProductRepo{products: []catalog.Product{*product}},
			&fakeSalesOrderRepo{orders: []trade.SalesOrder{order}},
			nil,
		)

		forecasts, err := svc.RunForecast(ctx)
		require.NoError(t, err)
		require.Len(t, forecasts, 1)
		assert.Equal(t, planning.UrgencyHigh, forecasts[0].Urgency)

		require.Len(t, forecaster.gotInventory, 1)
		assert.Equal(t, product.ID.String(), forecaster.gotInventory[0].ProductID)
		assert.Equal(t, int64(5), forecaster.gotInventory[0].CurrentStock)
		assert.Equal(t, int64(10), forecaster.gotInventory[0].MinStock)

		require.Len(t, forecaster.gotSales, 1)
		assert.Equal(t, "Honda Vario 160 ABS", forecaster.gotSales[0].ProductName)
		assert.Equal(t, "2023-10-02", forecaster.gotSales[0].OrderDate)
	})

	t.Run("invalid urgency is coerced to Low", func(t *testing.T) {
		product, order := seedFixture(t)
		forecaster := &fakeForecaster{forecasts: []planning.Forecast{{
			ProductID: product.ID,
			Urgency:   planning.Urgency("Soon-ish"),
		}}}

		svc := NewService(forecaster,
			&fakeProductRepo{products: []catalog.Product{*product}},
			&fakeSalesOrderRepo{orders: []trade.SalesOrder{order}},
			nil,
		)

		forecasts, err := svc.RunForecast(ctx)
		require.NoError(t, err)
		assert.Equal(t, planning.UrgencyLow, forecasts[0].Urgency)
	})

	t.Run("forecaster failure is returned to the caller", func(t *testing.T) {
		product, order := seedFixture(t)
		forecastErr := errors.New("prediction service unavailable")
		svc := NewService(&fakeForecaster{err: forecastErr},
			&fakeProductRepo{products: []catalog.Product{*product}},
			&fakeSalesOrderRepo{orders: []trade.SalesOrder{order}},
			nil,
		)

		_, err := svc.RunForecast(ctx)
		assert.True(t, errors.Is(err, forecastErr))
	})
}
