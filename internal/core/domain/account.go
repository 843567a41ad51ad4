package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceSide indicates on which side an account normally increases.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// Account represents one ledger account from the chart of accounts.
// Accounts are immutable reference data; services look them up by ID.
type Account struct {
	AccountID     string      `json:"accountID"`     // e.g. "kas", "crediteuren"
	Name          string      `json:"name"`          // Display name shown to the learner
	Type          AccountType `json:"type"`          // ASSET, LIABILITY, REVENUE or EXPENSE
	NormalBalance BalanceSide `json:"normalBalance"` // Side on which the account increases
}
