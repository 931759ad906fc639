package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrialBalance(t *testing.T) {
	entryDate := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

	revenue, err := NewJournalEntry("JE-001", "Sales Revenue SO-2023-001", "SO-2023-001",
		entryDate, []LineInput{
			{AccountID: AccountCashBank, Debit: idr(18_900_000)},
			{AccountID: AccountSalesRevenue, Credit: idr(18_900_000)},
		})
	require.NoError(t, err)

	cogs, err := NewJournalEntry("JE-002", "COGS Recognition SO-2023-001", "SO-2023-001",
		entryDate, []LineInput{
			{AccountID: AccountCostOfGoodsSold, Debit: idr(16_500_000)},
			{AccountID: AccountInventoryAsset, Credit: idr(16_500_000)},
		})
	require.NoError(t, err)

	tb := BuildTrialBalance([]JournalEntry{*revenue, *cogs})

	assert.True(t, tb.Balanced)
	assert.True(t, tb.TotalDebit.Equal(idr(35_400_000)))
	assert.True(t, tb.TotalCredit.Equal(idr(35_400_000)))
	require.Len(t, tb.Rows, 4)

	// Rows come back ordered by account code.
	assert.Equal(t, AccountCashBank, tb.Rows[0].AccountID)
	assert.Equal(t, AccountInventoryAsset, tb.Rows[1].AccountID)
	assert.Equal(t, AccountSalesRevenue, tb.Rows[2].AccountID)
	assert.Equal(t, AccountCostOfGoodsSold, tb.Rows[3].AccountID)

	assert.True(t, tb.Rows[0].TotalDebit.Equal(idr(18_900_000)))
	assert.True(t, tb.Rows[0].TotalCredit.IsZero())
}

func TestBuildTrialBalanceAggregatesPerAccount(t *testing.T) {
	entryDate := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

	first, err := NewJournalEntry("JE-001", "Sale one", "SO-1", entryDate, []LineInput{
		{AccountID: AccountCashBank, Debit: idr(100)},
		{AccountID: AccountSalesRevenue, Credit: idr(100)},
	})
	require.NoError(t, err)

	second, err := NewJournalEntry("JE-002", "Sale two", "SO-2", entryDate, []LineInput{
		{AccountID: AccountCashBank, Debit: idr(200)},
		{AccountID: AccountSalesRevenue, Credit: idr(200)},
	})
	require.NoError(t, err)

	tb := BuildTrialBalance([]JournalEntry{*first, *second})
	require.Len(t, tb.Rows, 2)
	assert.True(t, tb.Rows[0].TotalDebit.Equal(idr(300)))
	assert.True(t, tb.Rows[1].TotalCredit.Equal(idr(300)))
}

func TestBuildTrialBalanceEmpty(t *testing.T) {
	tb := BuildTrialBalance(nil)
	assert.Empty(t, tb.Rows)
	assert.True(t, tb.Balanced)
	assert.True(t, tb.TotalDebit.IsZero())
}
