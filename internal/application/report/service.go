// Package report aggregates store state into the dashboard summary
package report

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/trade"
)

// DashboardSummary is the aggregate shown on the landing screen
type DashboardSummary struct {
	TotalRevenue   decimal.Decimal      `json:"total_revenue"`
	TotalStock     int64                `json:"total_stock"`
	ProductCount   int64                `json:"product_count"`
	OrderCount     int64                `json:"order_count"`
	LowStockCount  int                  `json:"low_stock_count"`
	JournalEntries int64                `json:"journal_entries"`
	RecentOrders   []trade.SalesOrder   `json:"recent_orders"`
	LowStockItems  []catalog.Product    `json:"low_stock_items"`
	TrialBalance   finance.TrialBalance `json:"trial_balance"`
}

// Service builds the dashboard summary
type Service struct {
	products catalog.ProductRepository
	orders   trade.SalesOrderRepository
	journal  finance.JournalEntryRepository
}

// NewService creates a new report Service
func NewService(products catalog.ProductRepository, orders trade.SalesOrderRepository, journal finance.JournalEntryRepository) *Service {
	return &Service{products: products, orders: orders, journal: journal}
}

// BuildDashboard assembles the dashboard summary from the current store state
func (s *Service) BuildDashboard(ctx context.Context) (*DashboardSummary, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.products.FindBelowMinStock(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.orders.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	entries, err := s.journal.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.journal.SumCreditByAccount(ctx, finance.AccountSalesRevenue)
	if err != nil {
		return nil, err
	}

	var totalStock int64
	for _, p := range products {
		totalStock += p.Stock
	}

	return &DashboardSummary{
		TotalRevenue:   revenue,
		TotalStock:     totalStock,
		ProductCount:   int64(len(products)),
		OrderCount:     orderCount,
		LowStockCount:  len(lowStock),
		JournalEntries: int64(len(entries)),
		RecentOrders:   recent,
		LowStockItems:  lowStock,
		TrialBalance:   finance.BuildTrialBalance(entries),
	}, nil
}
