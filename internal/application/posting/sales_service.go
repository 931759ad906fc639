package posting

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/posting"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// AuditVerdict is the fraud-audit outcome for a candidate transaction
type AuditVerdict struct {
	Safe     bool   `json:"safe"`
	Analysis string `json:"analysis"`
}

// TransactionAuditor is the external fraud-audit boundary. It gates every
// sales posting: an unsafe verdict means the order must not be posted.
type TransactionAuditor interface {
	AuditTransaction(ctx context.Context, candidate any) (*AuditVerdict, error)
}

// CreateSalesOrderInput describes one checkout
type CreateSalesOrderInput struct {
	CustomerName string
	ProductID    uuid.UUID
	Quantity     int64
}

// SaleResult is the outcome of a checkout. Posted is false when the audit
// rejected the transaction; in that case the order was not persisted and
// Audit carries the analysis to surface to the user.
type SaleResult struct {
	Posted       bool
	Audit        AuditVerdict
	Order        *trade.SalesOrder
	RevenueEntry *financeEntryRef
	COGSEntry    *financeEntryRef
}

// financeEntryRef is a light reference to a posted journal entry
type financeEntryRef struct {
	EntryNumber string `json:"entry_number"`
	Amount      string `json:"amount"`
}

// SalesService commits audited sales orders to the ledger
type SalesService struct {
	scope   TransactionScope
	auditor TransactionAuditor
	logger  *zap.Logger

	mu sync.Mutex
}

// NewSalesService creates a new SalesService
func NewSalesService(scope TransactionScope, auditor TransactionAuditor, logger *zap.Logger) *SalesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesService{scope: scope, auditor: auditor, logger: logger}
}

// CreateAndPost runs one checkout end to end: build the order, pass it
// through the fraud audit, then atomically deduct inventory and post the
// revenue and COGS entries. Payment is immediate in this flow, so the
// order is marked paid on posting.
//
// An audit-service failure aborts the checkout with an error the caller can
// retry; an unsafe verdict returns a result with Posted=false and no state
// change.
func (s *SalesService) CreateAndPost(ctx context.Context, input CreateSalesOrderInput) (*SaleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.CustomerName == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "Customer name is required")
	}
	if input.Quantity <= 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "Quantity must be positive")
	}

	var result *SaleResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products().FindByID(ctx, input.ProductID)
		if err != nil {
			return err
		}

		now := time.Now()
		order, err := trade.NewSalesOrder(nextDocumentNumber("SO", now), input.CustomerName, now)
		if err != nil {
			return err
		}
		if _, err := order.AddItem(product.ID, product.Name, input.Quantity, product.GetPriceMoney()); err != nil {
			return err
		}
		if err := order.Confirm(); err != nil {
			return err
		}

		verdict, err := s.auditor.AuditTransaction(ctx, order)
		if err != nil {
			return err
		}
		if !verdict.Safe {
			s.logger.Warn("audit rejected sales order",
				zap.String("order", order.OrderNumber),
				zap.String("analysis", verdict.Analysis),
			)
			result = &SaleResult{Posted: false, Audit: *verdict}
			return nil
		}

		products := map[uuid.UUID]*catalog.Product{product.ID: product}
		posted, err := posting.PostSale(order, products,
			nextDocumentNumber("JE", now)+"-REV",
			nextDocumentNumber("JE", now)+"-COGS",
			now,
		)
		if err != nil {
			return err
		}
		posted.SalesOrder.MarkPaid()

		if err := repos.SalesOrders().Save(ctx, posted.SalesOrder); err != nil {
			return err
		}
		for _, p := range posted.UpdatedProducts {
			if err := repos.Products().Save(ctx, p); err != nil {
				return err
			}
		}
		if err := repos.JournalEntries().Save(ctx, posted.RevenueEntry); err != nil {
			return err
		}
		if err := repos.JournalEntries().Save(ctx, posted.COGSEntry); err != nil {
			return err
		}

		result = &SaleResult{
			Posted: true,
			Audit:  *verdict,
			Order:  posted.SalesOrder,
			RevenueEntry: &financeEntryRef{
				EntryNumber: posted.RevenueEntry.EntryNumber,
				Amount:      posted.RevenueEntry.TotalDebit.String(),
			},
			COGSEntry: &financeEntryRef{
				EntryNumber: posted.COGSEntry.EntryNumber,
				Amount:      posted.COGSEntry.TotalDebit.String(),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Posted {
		s.logger.Info("sales order posted",
			zap.String("order", result.Order.OrderNumber),
			zap.String("total", result.Order.TotalAmount.String()),
		)
	}
	return result, nil
}

// ListOrders returns all sales orders
func (s *SalesService) ListOrders(ctx context.Context) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		orders, err = repos.SalesOrders().FindAll(ctx)
		return err
	})
	return orders, err
}
