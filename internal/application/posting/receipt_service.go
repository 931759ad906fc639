// Package posting hosts the application services that commit ledger-affecting
// operations. Each service serializes its postings and applies every posting
// result through a single transaction scope.
package posting

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/posting"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// ReceiptService commits validated receiving reports to the ledger
type ReceiptService struct {
	scope  TransactionScope
	logger *zap.Logger

	// postings run one at a time; two receipts racing over the same
	// purchase order must not both observe it as open
	mu sync.Mutex
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(scope TransactionScope, logger *zap.Logger) *ReceiptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptService{scope: scope, logger: logger}
}

// ConfirmAndPost validates the draft receiving report identified by
// reportID and posts it against its purchase order. The validation is the
// explicit user confirmation required before any receipt reaches the
// ledger; a report is never validated automatically.
func (s *ReceiptService) ConfirmAndPost(ctx context.Context, reportID uuid.UUID) (*posting.ReceiptPostingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result *posting.ReceiptPostingResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		report, err := repos.ReceivingReports().FindByID(ctx, reportID)
		if err != nil {
			return err
		}
		po, err := repos.PurchaseOrders().FindByID(ctx, report.PurchaseOrderID)
		if err != nil {
			return err
		}

		if err := report.Validate(); err != nil {
			return err
		}

		products := make(map[uuid.UUID]*catalog.Product, len(report.Items))
		for _, item := range report.Items {
			if _, seen := products[item.ProductID]; seen {
				continue
			}
			product, err := repos.Products().FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					// Missing products surface as a posting error below.
					products[item.ProductID] = nil
					continue
				}
				return err
			}
			products[item.ProductID] = product
		}

		now := time.Now()
		result, err = posting.PostReceipt(report, po, products, nextDocumentNumber("JE", now), now)
		if err != nil {
			return err
		}

		if err := repos.ReceivingReports().Save(ctx, report); err != nil {
			return err
		}
		if err := repos.PurchaseOrders().Save(ctx, result.PurchaseOrder); err != nil {
			return err
		}
		for _, product := range result.UpdatedProducts {
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}
		}
		return repos.JournalEntries().Save(ctx, result.JournalEntry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("receipt posted",
		zap.String("purchase_order", result.PurchaseOrder.OrderNumber),
		zap.String("journal_entry", result.JournalEntry.EntryNumber),
		zap.String("amount", result.JournalEntry.TotalDebit.String()),
	)
	return result, nil
}

// ListPurchaseOrders returns all purchase orders
func (s *ReceiptService) ListPurchaseOrders(ctx context.Context) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		orders, err = repos.PurchaseOrders().FindAll(ctx)
		return err
	})
	return orders, err
}

// GetReceivingReport returns one receiving report by ID
func (s *ReceiptService) GetReceivingReport(ctx context.Context, reportID uuid.UUID) (*trade.ReceivingReport, error) {
	var report *trade.ReceivingReport
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		report, err = repos.ReceivingReports().FindByID(ctx, reportID)
		return err
	})
	return report, err
}

// GetReceivingReportWithOrder returns a receiving report together with its
// purchase order
func (s *ReceiptService) GetReceivingReportWithOrder(ctx context.Context, reportID uuid.UUID) (*trade.ReceivingReport, *trade.PurchaseOrder, error) {
	var (
		report *trade.ReceivingReport
		order  *trade.PurchaseOrder
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		report, err = repos.ReceivingReports().FindByID(ctx, reportID)
		if err != nil {
			return err
		}
		order, err = repos.PurchaseOrders().FindByID(ctx, report.PurchaseOrderID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return report, order, nil
}
