package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/synergytrade/backend/internal/domain/shared"
	"github.com/synergytrade/backend/internal/domain/shared/valueobject"
)

// JournalLine is a single debit or credit against an account
type JournalLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	EntryID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"entry_id"`
	LineNo      int             `gorm:"not null" json:"line_no"`
	AccountID   string          `gorm:"type:varchar(20);not null;index" json:"account_id"`
	AccountName string          `gorm:"type:varchar(100);not null" json:"account_name"`
	Debit       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"debit"`
	Credit      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"credit"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// TableName returns the table name for GORM
func (JournalLine) TableName() string {
	return "journal_lines"
}

// JournalEntry is a balanced double-entry posting. Entries are append-only:
// once constructed and saved they are never edited or deleted.
type JournalEntry struct {
	shared.BaseEntity
	EntryNumber string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"entry_number"`
	EntryDate   time.Time       `gorm:"not null" json:"entry_date"`
	Description string          `gorm:"type:varchar(500);not null" json:"description"`
	Reference   string          `gorm:"type:varchar(50);index" json:"reference"`
	Lines       []JournalLine   `gorm:"foreignKey:EntryID;references:ID" json:"lines"`
	TotalDebit  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_debit"`
	TotalCredit decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_credit"`
}

// TableName returns the table name for GORM
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// LineInput describes one line of an entry under construction
type LineInput struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// NewJournalEntry builds a journal entry from the given lines and enforces
// the double-entry invariant: the sum of debits must equal the sum of
// credits, and each line carries either a debit or a credit, not both.
func NewJournalEntry(entryNumber, description, reference string, entryDate time.Time, lines []LineInput) (*JournalEntry, error) {
	if entryNumber == "" {
		return nil, shared.NewDomainError("INVALID_ENTRY_NUMBER", "Entry number cannot be empty")
	}
	if len(lines) < 2 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "A journal entry needs at least two lines")
	}

	entry := &JournalEntry{
		BaseEntity:  shared.NewBaseEntity(),
		EntryNumber: entryNumber,
		EntryDate:   entryDate,
		Description: description,
		Reference:   reference,
		Lines:       make([]JournalLine, 0, len(lines)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	now := time.Now()
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "Journal amounts cannot be negative")
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "A journal line cannot carry both a debit and a credit")
		}
		entry.Lines = append(entry.Lines, JournalLine{
			ID:          uuid.New(),
			EntryID:     entry.ID,
			LineNo:      i + 1,
			AccountID:   line.AccountID,
			AccountName: AccountName(line.AccountID),
			Debit:       line.Debit,
			Credit:      line.Credit,
			CreatedAt:   now,
		})
		entry.TotalDebit = entry.TotalDebit.Add(line.Debit)
		entry.TotalCredit = entry.TotalCredit.Add(line.Credit)
	}

	if !entry.TotalDebit.Equal(entry.TotalCredit) {
		return nil, shared.NewDomainError(shared.ErrUnbalancedEntry.Code,
			"Journal entry "+entryNumber+" does not balance: debit "+entry.TotalDebit.String()+
				" vs credit "+entry.TotalCredit.String())
	}

	return entry, nil
}

// IsBalanced reports whether total debits equal total credits
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebit.Equal(e.TotalCredit)
}

// GetTotalDebitMoney returns the debit total as a Money value object
func (e *JournalEntry) GetTotalDebitMoney() valueobject.Money {
	return valueobject.NewMoneyIDR(e.TotalDebit)
}
