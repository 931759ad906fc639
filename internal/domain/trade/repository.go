package trade

import (
	"context"

	"github.com/google/uuid"
)

// SalesOrderRepository defines the persistence contract for sales orders
type SalesOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)
	FindAll(ctx context.Context) ([]SalesOrder, error)
	FindRecent(ctx context.Context, limit int) ([]SalesOrder, error)
	Save(ctx context.Context, order *SalesOrder) error
	Count(ctx context.Context) (int64, error)
}

// PurchaseOrderRepository defines the persistence contract for purchase orders
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindAll(ctx context.Context) ([]PurchaseOrder, error)
	FindByStatus(ctx context.Context, status PurchaseOrderStatus) ([]PurchaseOrder, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	Count(ctx context.Context) (int64, error)
}

// ReceivingReportRepository defines the persistence contract for receiving reports
type ReceivingReportRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReceivingReport, error)
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]ReceivingReport, error)
	Save(ctx context.Context, report *ReceivingReport) error
}
