package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/finance"
	"github.com/synergytrade/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormJournalEntryRepository implements the append-only JournalEntryRepository
// using GORM. It exposes no update or delete path.
type GormJournalEntryRepository struct {
	db *gorm.DB
}

// NewGormJournalEntryRepository creates a new GormJournalEntryRepository
func NewGormJournalEntryRepository(db *gorm.DB) *GormJournalEntryRepository {
	return &GormJournalEntryRepository{db: db}
}

// FindByEntryNumber finds a journal entry by its unique entry number
func (r *GormJournalEntryRepository) FindByEntryNumber(ctx context.Context, entryNumber string) (*finance.JournalEntry, error) {
	var entry finance.JournalEntry
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("entry_number = ?", entryNumber).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByReference returns all entries carrying the given source reference
func (r *GormJournalEntryRepository) FindByReference(ctx context.Context, reference string) ([]finance.JournalEntry, error) {
	var entries []finance.JournalEntry
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("reference = ?", reference).
		Order("entry_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindAll returns all journal entries with their lines, newest first
func (r *GormJournalEntryRepository) FindAll(ctx context.Context) ([]finance.JournalEntry, error) {
	var entries []finance.JournalEntry
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("entry_date DESC, entry_number DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save inserts a journal entry. Entries are append-only, so an entry that
// already exists is rejected rather than updated.
func (r *GormJournalEntryRepository) Save(ctx context.Context, entry *finance.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// SumDebitByAccount returns the total debited to an account across all entries
func (r *GormJournalEntryRepository) SumDebitByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return r.sumColumnByAccount(ctx, "debit", accountID)
}

// SumCreditByAccount returns the total credited to an account across all entries
func (r *GormJournalEntryRepository) SumCreditByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return r.sumColumnByAccount(ctx, "credit", accountID)
}

func (r *GormJournalEntryRepository) sumColumnByAccount(ctx context.Context, column, accountID string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&finance.JournalLine{}).
		Select("SUM(" + column + ")").
		Where("account_id = ?", accountID).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Count returns the number of journal entries
func (r *GormJournalEntryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&finance.JournalEntry{}).Count(&count).Error
	return count, err
}

var _ finance.JournalEntryRepository = (*GormJournalEntryRepository)(nil)
