package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

// JournalEntryRepository defines the append-only persistence contract for
// journal entries. There is deliberately no update or delete operation.
type JournalEntryRepository interface {
	FindByEntryNumber(ctx context.Context, entryNumber string) (*JournalEntry, error)
	FindByReference(ctx context.Context, reference string) ([]JournalEntry, error)
	FindAll(ctx context.Context) ([]JournalEntry, error)
	Save(ctx context.Context, entry *JournalEntry) error
	SumDebitByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
	SumCreditByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}
