package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormReceivingReportRepository implements ReceivingReportRepository using GORM
type GormReceivingReportRepository struct {
	db *gorm.DB
}

// NewGormReceivingReportRepository creates a new GormReceivingReportRepository
func NewGormReceivingReportRepository(db *gorm.DB) *GormReceivingReportRepository {
	return &GormReceivingReportRepository{db: db}
}

// FindByID finds a receiving report with its items
func (r *GormReceivingReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.ReceivingReport, error) {
	var report trade.ReceivingReport
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// FindByPurchaseOrder returns all receiving reports for a purchase order
func (r *GormReceivingReportRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]trade.ReceivingReport, error) {
	var reports []trade.ReceivingReport
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("receipt_date DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Save persists a receiving report and its items
func (r *GormReceivingReportRepository) Save(ctx context.Context, report *trade.ReceivingReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

var _ trade.ReceivingReportRepository = (*GormReceivingReportRepository)(nil)
