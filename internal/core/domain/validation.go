package domain

import "github.com/shopspring/decimal"

// ValidationErrorType classifies the recoverable errors a posting can have.
type ValidationErrorType string

const (
	ErrTypeNotBalanced    ValidationErrorType = "NOT_BALANCED"
	ErrTypeIncorrectEntry ValidationErrorType = "INCORRECT_ENTRY"
	ErrTypeMissingEntry   ValidationErrorType = "MISSING_ENTRY"
	ErrTypeExtraEntries   ValidationErrorType = "EXTRA_ENTRIES"
	ErrTypeEmptyEntry     ValidationErrorType = "EMPTY_ENTRY"
	ErrTypeAmountMismatch ValidationErrorType = "AMOUNT_MISMATCH"
)

// ValidationError is one actionable problem with a submitted posting.
type ValidationError struct {
	Type             ValidationErrorType `json:"type"`
	Message          string              `json:"message"`
	AffectedRowIndex *int                `json:"affectedRowIndex,omitempty"`
}

// BalanceCheck reports the debit/credit totals of a submission.
type BalanceCheck struct {
	IsBalanced  bool            `json:"isBalanced"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
}

// EntryMatchResult flags one submitted line for UI highlighting.
type EntryMatchResult struct {
	UserEntry     JournalEntry  `json:"userEntry"`
	ExpectedEntry *JournalEntry `json:"expectedEntry,omitempty"`
	IsCorrect     bool          `json:"isCorrect"`
	Issues        []string      `json:"issues"`
}

// ValidationResult is the structured verdict on one submission. Validation
// never fails; learner mistakes surface here, not as errors.
type ValidationResult struct {
	IsValid      bool               `json:"isValid"`
	Errors       []ValidationError  `json:"errors"`
	BalanceCheck BalanceCheck       `json:"balanceCheck"`
	EntryMatches []EntryMatchResult `json:"entryMatches"`
}
