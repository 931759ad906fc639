package persistence

import (
	"context"

	appposting "github.com/synergytrade/backend/internal/application/posting"
	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// If the function returns an error the whole transaction rolls back, which
// gives postings their all-or-nothing behavior.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appposting.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories binds every repository to one transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Products returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// SalesOrders returns the sales order repository scoped to the current transaction
func (r *gormTransactionalRepositories) SalesOrders() trade.SalesOrderRepository {
	return NewGormSalesOrderRepository(r.tx)
}

// PurchaseOrders returns the purchase order repository scoped to the current transaction
func (r *gormTransactionalRepositories) PurchaseOrders() trade.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// ReceivingReports returns the receiving report repository scoped to the current transaction
func (r *gormTransactionalRepositories) ReceivingReports() trade.ReceivingReportRepository {
	return NewGormReceivingReportRepository(r.tx)
}

// JournalEntries returns the journal entry repository scoped to the current transaction
func (r *gormTransactionalRepositories) JournalEntries() finance.JournalEntryRepository {
	return NewGormJournalEntryRepository(r.tx)
}

var (
	_ appposting.TransactionScope          = (*GormTransactionScope)(nil)
	_ appposting.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
