// Package planning produces advisory demand forecasts. The forecast itself
// comes from an external prediction service; this package only assembles the
// inputs and validates the advice before handing it to the purchasing screen.
package planning

import (
	"context"

	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/planning"
	"github.com/synergytrade/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// StockSnapshot is one product's state as presented to the forecaster
type StockSnapshot struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int64  `json:"current_stock"`
	MinStock     int64  `json:"min_stock"`
}

// SalesSample is one recent order line as presented to the forecaster
type SalesSample struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	OrderDate   string `json:"order_date"`
}

// DemandForecaster is the external prediction boundary
type DemandForecaster interface {
	ForecastDemand(ctx context.Context, inventory []StockSnapshot, recentSales []SalesSample) ([]planning.Forecast, error)
}

// recentSalesWindow caps how many order lines the forecaster sees
const recentSalesWindow = 50

// Service assembles forecast inputs from the current store state
type Service struct {
	forecaster DemandForecaster
	products   catalog.ProductRepository
	orders     trade.SalesOrderRepository
	logger     *zap.Logger
}

// NewService creates a new planning Service
func NewService(forecaster DemandForecaster, products catalog.ProductRepository, orders trade.SalesOrderRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{forecaster: forecaster, products: products, orders: orders, logger: logger}
}

// RunForecast snapshots inventory and recent sales and asks the forecaster
// for ordering advice. Forecasts are advisory: nothing here touches stock or
// the ledger, and a forecaster failure is returned to the caller to retry.
func (s *Service) RunForecast(ctx context.Context) ([]planning.Forecast, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshots := make([]StockSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, StockSnapshot{
			ProductID:    p.ID.String(),
			Name:         p.Name,
			Category:     p.Category,
			CurrentStock: p.Stock,
			MinStock:     p.MinStock,
		})
	}

	orders, err := s.orders.FindRecent(ctx, recentSalesWindow)
	if err != nil {
		return nil, err
	}
	samples := make([]SalesSample, 0, len(orders))
	for _, o := range orders {
		for _, item := range o.Items {
			samples = append(samples, SalesSample{
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				OrderDate:   o.OrderDate.Format("2006-01-02"),
			})
		}
	}

	forecasts, err := s.forecaster.ForecastDemand(ctx, snapshots, samples)
	if err != nil {
		return nil, err
	}
	for i := range forecasts {
		if !forecasts[i].Urgency.IsValid() {
			forecasts[i].Urgency = planning.UrgencyLow
		}
	}
	s.logger.Info("demand forecast produced", zap.Int("products", len(forecasts)))
	return forecasts, nil
}
