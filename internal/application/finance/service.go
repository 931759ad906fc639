// Package finance provides read-side ledger queries. Entries are only ever
// written by the posting services; this package never mutates the journal.
package finance

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/finance"
)

// Service provides application-level ledger queries
type Service struct {
	journal finance.JournalEntryRepository
}

// NewService creates a new finance Service
func NewService(journal finance.JournalEntryRepository) *Service {
	return &Service{journal: journal}
}

// ListJournalEntries returns all journal entries, newest first
func (s *Service) ListJournalEntries(ctx context.Context) ([]finance.JournalEntry, error) {
	return s.journal.FindAll(ctx)
}

// GetTrialBalance aggregates all entries into a trial balance
func (s *Service) GetTrialBalance(ctx context.Context) (*finance.TrialBalance, error) {
	entries, err := s.journal.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tb := finance.BuildTrialBalance(entries)
	return &tb, nil
}

// TotalRevenue returns the total credited to the sales revenue account
func (s *Service) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.journal.SumCreditByAccount(ctx, finance.AccountSalesRevenue)
}
