package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one account line of a posting with either a debit or a
// credit value. A line with both sides nil is an incomplete row; the
// validator reports it, construction does not enforce it.
type JournalEntry struct {
	Account Account          `json:"account"`
	Debit   *decimal.Decimal `json:"debit"`
	Credit  *decimal.Decimal `json:"credit"`
}

// DebitOrZero returns the debit value, or zero when the side is empty.
func (e JournalEntry) DebitOrZero() decimal.Decimal {
	if e.Debit == nil {
		return decimal.Zero
	}
	return *e.Debit
}

// CreditOrZero returns the credit value, or zero when the side is empty.
func (e JournalEntry) CreditOrZero() decimal.Decimal {
	if e.Credit == nil {
		return decimal.Zero
	}
	return *e.Credit
}

// GeneratedAmounts holds the numeric variables drawn for a transaction.
type GeneratedAmounts struct {
	Amount  decimal.Decimal  `json:"amount"`
	Partial *decimal.Decimal `json:"partial,omitempty"` // Split payments only
}

// MismatchDetails records an intentional difference between the amount in
// the chat message and the amount on the attached document.
type MismatchDetails struct {
	ChatAmount    decimal.Decimal `json:"chatAmount"`
	ReceiptAmount decimal.Decimal `json:"receiptAmount"`
	// Difference is ChatAmount - ReceiptAmount; positive means the chat
	// overstates the document.
	Difference decimal.Decimal `json:"difference"`
}

// GeneratedTransaction is a materialized transaction instance. It is created
// once by the generator and read-only for the rest of the session.
// ActualAmount always backs the correct answer, the hints and the attached
// document; DisplayAmount, when set, is the deliberately different figure
// shown in the chat narrative.
type GeneratedTransaction struct {
	TransactionID     string    `json:"transactionID"`
	TemplateID        string    `json:"templateID"`
	TransactionNumber int       `json:"transactionNumber"` // 1-based, determines unlock order
	TimeSlot          string    `json:"timeSlot"`
	Sender            Character `json:"sender"`

	Message    string      `json:"message"`
	Attachment *Attachment `json:"attachment,omitempty"`

	GeneratedAmounts GeneratedAmounts `json:"generatedAmounts"`
	CorrectAnswer    []JournalEntry   `json:"correctAnswer"`

	Hints             []Hint           `json:"hints"`
	FeedbackCorrect   FeedbackTemplate `json:"feedbackCorrect"`
	FeedbackIncorrect FeedbackTemplate `json:"feedbackIncorrect"`

	HasAmountMismatch bool             `json:"hasAmountMismatch"`
	DisplayAmount     *decimal.Decimal `json:"displayAmount,omitempty"`
	ActualAmount      decimal.Decimal  `json:"actualAmount"`
	MismatchDetails   *MismatchDetails `json:"mismatchDetails,omitempty"`
}

// SimulationConfig carries the session-level tuning knobs.
type SimulationConfig struct {
	// TimeLimits maps transaction number to a countdown in seconds.
	// 0 (or a missing entry) means the transaction is untimed.
	TimeLimits map[int]int `json:"timeLimits"`
	// WarningThresholdSecs is the remaining time at which the timer enters
	// the warning state; CriticalThresholdSecs the critical state.
	WarningThresholdSecs  int `json:"warningThresholdSecs"`
	CriticalThresholdSecs int `json:"criticalThresholdSecs"`
}

// Simulation is the complete generated session content: one transaction per
// pool, in pool order. Immutable once generated; a session reset produces a
// whole new simulation.
type Simulation struct {
	SimulationID string                 `json:"simulationID"`
	Seed         string                 `json:"seed"` // Reproduces the exact same transaction list
	UserID       string                 `json:"userID"`
	CreatedAt    time.Time              `json:"createdAt"`
	Config       SimulationConfig       `json:"config"`
	Transactions []GeneratedTransaction `json:"transactions"`
}
