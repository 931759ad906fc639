package finance

// Account codes for the fixed demo chart of accounts. Posting only ever
// touches these five accounts.
const (
	AccountCashBank        = "1101"
	AccountInventoryAsset  = "1301"
	AccountAccountsPayable = "2101"
	AccountSalesRevenue    = "4101"
	AccountCostOfGoodsSold = "5101"
)

// accountNames maps account codes to display names
var accountNames = map[string]string{
	AccountCashBank:        "Cash / Bank",
	AccountInventoryAsset:  "Inventory Asset",
	AccountAccountsPayable: "Accounts Payable",
	AccountSalesRevenue:    "Sales Revenue",
	AccountCostOfGoodsSold: "Cost of Goods Sold",
}

// AccountName returns the display name for an account code
func AccountName(accountID string) string {
	if name, ok := accountNames[accountID]; ok {
		return name
	}
	return "Unknown Account"
}
