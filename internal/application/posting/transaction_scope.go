package posting

import (
	"context"

	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/trade"
)

// TransactionScope runs a function against a transactional view of the
// store. Everything written inside the function is committed together or
// not at all, which is what makes postings all-or-nothing: either the
// inventory, the order state and the journal all change, or none of them do.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes all repositories bound to one
// transaction.
type TransactionalRepositories interface {
	Products() catalog.ProductRepository
	SalesOrders() trade.SalesOrderRepository
	PurchaseOrders() trade.PurchaseOrderRepository
	ReceivingReports() trade.ReceivingReportRepository
	JournalEntries() finance.JournalEntryRepository
}

// NoOpTransactionScope runs the function directly against the given
// repositories without a real transaction. Useful in tests.
type NoOpTransactionScope struct {
	ProductRepo catalog.ProductRepository
	SalesRepo   trade.SalesOrderRepository
	PORepo      trade.PurchaseOrderRepository
	ReportRepo  trade.ReceivingReportRepository
	JournalRepo finance.JournalEntryRepository
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.ProductRepo }

// SalesOrders returns the sales order repository
func (s *NoOpTransactionScope) SalesOrders() trade.SalesOrderRepository { return s.SalesRepo }

// PurchaseOrders returns the purchase order repository
func (s *NoOpTransactionScope) PurchaseOrders() trade.PurchaseOrderRepository { return s.PORepo }

// ReceivingReports returns the receiving report repository
func (s *NoOpTransactionScope) ReceivingReports() trade.ReceivingReportRepository { return s.ReportRepo }

// JournalEntries returns the journal entry repository
func (s *NoOpTransactionScope) JournalEntries() finance.JournalEntryRepository { return s.JournalRepo }

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
