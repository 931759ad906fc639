package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow aggregates journal activity for one account
type TrialBalanceRow struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// TrialBalance summarizes all posted journal entries per account.
// For a ledger built only from balanced entries, TotalDebit always
// equals TotalCredit.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
	Balanced    bool              `json:"balanced"`
}

// BuildTrialBalance folds journal entries into per-account totals,
// ordered by account code.
func BuildTrialBalance(entries []JournalEntry) TrialBalance {
	byAccount := make(map[string]*TrialBalanceRow)
	for _, entry := range entries {
		for _, line := range entry.Lines {
			row, ok := byAccount[line.AccountID]
			if !ok {
				row = &TrialBalanceRow{
					AccountID:   line.AccountID,
					AccountName: line.AccountName,
					TotalDebit:  decimal.Zero,
					TotalCredit: decimal.Zero,
				}
				byAccount[line.AccountID] = row
			}
			row.TotalDebit = row.TotalDebit.Add(line.Debit)
			row.TotalCredit = row.TotalCredit.Add(line.Credit)
		}
	}

	tb := TrialBalance{
		Rows:        make([]TrialBalanceRow, 0, len(byAccount)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, row := range byAccount {
		tb.Rows = append(tb.Rows, *row)
		tb.TotalDebit = tb.TotalDebit.Add(row.TotalDebit)
		tb.TotalCredit = tb.TotalCredit.Add(row.TotalCredit)
	}
	sort.Slice(tb.Rows, func(i, j int) bool {
		return tb.Rows[i].AccountID < tb.Rows[j].AccountID
	})
	tb.Balanced = tb.TotalDebit.Equal(tb.TotalCredit)
	return tb
}
