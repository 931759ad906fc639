package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID finds a sales order with its items
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll returns all sales orders with their items, newest first
func (r *GormSalesOrderRepository) FindAll(ctx context.Context) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC, order_number DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindRecent returns the most recent sales orders with their items
func (r *GormSalesOrderRepository) FindRecent(ctx context.Context, limit int) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC, order_number DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists a sales order and its items
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Count returns the number of sales orders
func (r *GormSalesOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).Count(&count).Error
	return count, err
}

var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
