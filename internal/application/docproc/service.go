// Package docproc coordinates intelligent document processing for goods
// receiving: it sends the scanned delivery document to the extraction
// service, archives the original, matches the extraction against open
// purchase orders and drafts a receiving report for user confirmation.
package docproc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// DocumentExtractor is the external extraction service boundary. It only
// reads the document and produces data; it never mutates ERP state, so
// calls may be retried freely.
type DocumentExtractor interface {
	ExtractDocument(ctx context.Context, content []byte, mimeType, documentTypeHint string) (*ExtractionResult, error)
}

// DocumentArchiver stores the original scanned document bytes
type DocumentArchiver interface {
	Store(ctx context.Context, storageKey, contentType string, content []byte) error
}

// ScanResult is the outcome of processing one delivery document. When no
// purchase order matches, MatchedOrder and Report are nil and the caller
// must resolve the receipt manually; the service never guesses an order.
type ScanResult struct {
	Extraction   *ExtractionResult
	MatchedOrder *trade.PurchaseOrder
	Report       *trade.ReceivingReport
	StorageKey   string
}

// Service processes scanned delivery documents
type Service struct {
	extractor   DocumentExtractor
	archiver    DocumentArchiver
	productRepo catalog.ProductRepository
	poRepo      trade.PurchaseOrderRepository
	reportRepo  trade.ReceivingReportRepository
	logger      *zap.Logger
}

// NewService creates a new document processing service
func NewService(
	extractor DocumentExtractor,
	archiver DocumentArchiver,
	productRepo catalog.ProductRepository,
	poRepo trade.PurchaseOrderRepository,
	reportRepo trade.ReceivingReportRepository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		extractor:   extractor,
		archiver:    archiver,
		productRepo: productRepo,
		poRepo:      poRepo,
		reportRepo:  reportRepo,
		logger:      logger,
	}
}

// ScanDeliveryDocument extracts a scanned delivery note, archives the
// original document, matches it against open purchase orders and, when a
// match is found, persists a draft receiving report.
//
// An extraction failure is returned as-is so the caller can offer a retry;
// no default data is ever substituted.
func (s *Service) ScanDeliveryDocument(ctx context.Context, content []byte, mimeType string) (*ScanResult, error) {
	if len(content) == 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "Document content is empty")
	}

	extraction, err := s.extractor.ExtractDocument(ctx, content, mimeType, DocumentTypeDeliveryNote)
	if err != nil {
		s.logger.Warn("document extraction failed", zap.Error(err))
		return nil, err
	}
	if err := ValidateExtraction(extraction); err != nil {
		return nil, err
	}

	storageKey := fmt.Sprintf("delivery-documents/%s/%s", time.Now().Format("2006/01/02"), uuid.New().String())
	if s.archiver != nil {
		if err := s.archiver.Store(ctx, storageKey, mimeType, content); err != nil {
			// Archiving is best-effort; the receipt flow must not depend on it.
			s.logger.Warn("failed to archive delivery document", zap.String("key", storageKey), zap.Error(err))
			storageKey = ""
		}
	} else {
		storageKey = ""
	}

	result := &ScanResult{
		Extraction: extraction,
		StorageKey: storageKey,
	}

	reference, ok := extraction.ExtractedFields.Reference()
	if !ok {
		s.logger.Info("extraction carries no purchase order reference")
		return result, nil
	}

	openOrders, err := s.poRepo.FindByStatus(ctx, trade.PurchaseOrderStatusOpen)
	if err != nil {
		return nil, err
	}
	matched, err := trade.MatchPurchaseOrder(reference, openOrders)
	if err != nil {
		s.logger.Info("no purchase order matched extracted reference", zap.String("reference", reference))
		return result, nil
	}
	result.MatchedOrder = matched

	report, err := s.buildReceivingReport(ctx, extraction, matched)
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	result.Report = report

	s.logger.Info("delivery document matched",
		zap.String("purchase_order", matched.OrderNumber),
		zap.String("report", report.ReportNumber),
		zap.Float64("confidence", extraction.ConfidenceScore),
	)
	return result, nil
}

// BuildManualReport drafts a receiving report against an explicitly chosen
// purchase order. This is the manual-resolution path for receipts whose
// reference did not match any open order.
func (s *Service) BuildManualReport(ctx context.Context, extraction *ExtractionResult, purchaseOrderID uuid.UUID) (*trade.ReceivingReport, error) {
	if err := ValidateExtraction(extraction); err != nil {
		return nil, err
	}
	po, err := s.poRepo.FindByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	if !po.IsOpen() {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code,
			"Purchase order "+po.OrderNumber+" is not open for receiving")
	}
	report, err := s.buildReceivingReport(ctx, extraction, po)
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// buildReceivingReport maps extracted line items onto catalog products. A
// line resolves to a product whose name contains the extracted item name;
// when nothing resolves, the line falls back to the product of the purchase
// order's first item so the operator can correct it before validating.
func (s *Service) buildReceivingReport(ctx context.Context, extraction *ExtractionResult, po *trade.PurchaseOrder) (*trade.ReceivingReport, error) {
	if len(po.Items) == 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code,
			"Purchase order "+po.OrderNumber+" has no items to receive against")
	}

	receiptDate := time.Now()
	if extraction.ExtractedFields.DocumentDate != nil {
		if parsed, err := time.Parse("2006-01-02", *extraction.ExtractedFields.DocumentDate); err == nil {
			receiptDate = parsed
		}
	}

	deliveryNo := "UNKNOWN"
	if extraction.ExtractedFields.DeliveryNoteNo != nil && *extraction.ExtractedFields.DeliveryNoteNo != "" {
		deliveryNo = *extraction.ExtractedFields.DeliveryNoteNo
	}

	reportNumber := fmt.Sprintf("RR-%s-%s", receiptDate.Format("20060102"), strings.ToUpper(uuid.New().String()[:8]))
	report, err := trade.NewReceivingReport(reportNumber, po.ID, receiptDate, deliveryNo)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, line := range extraction.TableData {
		if line.Quantity == nil || *line.Quantity <= 0 {
			continue
		}
		name := ""
		if line.ItemName != nil {
			name = *line.ItemName
		}

		productID := po.Items[0].ProductID
		if resolved := resolveProduct(products, name); resolved != nil {
			productID = resolved.ID
		}

		var chassis, engines []string
		if line.ChassisNumber != nil && *line.ChassisNumber != "" {
			chassis = []string{*line.ChassisNumber}
		}
		if line.EngineNumber != nil && *line.EngineNumber != "" {
			engines = []string{*line.EngineNumber}
		}
		if name == "" {
			name = po.Items[0].ProductName
		}
		if _, err := report.AddItem(productID, name, *line.Quantity, chassis, engines); err != nil {
			return nil, err
		}
	}

	if len(report.Items) == 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code,
			"Extracted document contains no usable line items")
	}
	return report, nil
}

// resolveProduct finds a catalog product whose name contains the extracted
// item name (case-insensitive). Returns nil when the name is empty or
// nothing matches.
func resolveProduct(products []catalog.Product, itemName string) *catalog.Product {
	name := strings.TrimSpace(itemName)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Name), lower) {
			return &products[i]
		}
	}
	return nil
}
