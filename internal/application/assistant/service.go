// Package assistant answers free-form questions about the current business
// state. It grounds every question in a plain-text snapshot of inventory,
// sales and the ledger, so the answer engine never sees the store directly.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/synergytrade/backend/internal/domain/catalog"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// Assistant is the external question-answering boundary
type Assistant interface {
	Answer(ctx context.Context, question, businessContext string) (string, error)
}

// Service builds the business-context snapshot and relays questions
type Service struct {
	assistant Assistant
	products  catalog.ProductRepository
	orders    trade.SalesOrderRepository
	journal   finance.JournalEntryRepository
	logger    *zap.Logger
}

// NewService creates a new assistant Service
func NewService(assistant Assistant, products catalog.ProductRepository, orders trade.SalesOrderRepository, journal finance.JournalEntryRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{assistant: assistant, products: products, orders: orders, journal: journal, logger: logger}
}

// Ask answers one question grounded in the current store snapshot
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", shared.NewDomainError(shared.ErrInvalidInput.Code, "Question is required")
	}

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return "", err
	}

	answer, err := s.assistant.Answer(ctx, question, snapshot)
	if err != nil {
		return "", err
	}
	s.logger.Debug("assistant answered", zap.Int("question_len", len(question)))
	return answer, nil
}

func (s *Service) buildSnapshot(ctx context.Context) (string, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return "", err
	}
	orders, err := s.orders.FindRecent(ctx, 20)
	if err != nil {
		return "", err
	}
	revenue, err := s.journal.SumDebitByAccount(ctx, finance.AccountCashBank)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("INVENTORY:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): stock %d, min %d, price %s\n",
			p.Name, p.Code, p.Stock, p.MinStock, p.Price.String())
	}
	b.WriteString("RECENT SALES ORDERS:\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "- %s: %s, total %s, status %s, payment %s\n",
			o.OrderNumber, o.CustomerName, o.TotalAmount.String(), o.Status, o.PaymentStatus)
	}
	fmt.Fprintf(&b, "CASH/BANK DEBITS TO DATE: %s\n", revenue.String())
	return b.String(), nil
}
