package domain

// AttachmentType distinguishes rendered HTML documents from static images.
type AttachmentType string

const (
	AttachmentHTML  AttachmentType = "HTML"
	AttachmentImage AttachmentType = "IMAGE"
)

// Attachment is a document (receipt, invoice) attached to a chat message.
// For HTML attachments the content is synthesized at generation time and
// always carries the actual amount, never the display amount.
type Attachment struct {
	Type        AttachmentType `json:"type"`
	Filename    string         `json:"filename"`
	URL         string         `json:"url,omitempty"`         // Images only
	HTMLContent string         `json:"htmlContent,omitempty"` // Rendered receipt/invoice body
}

// AmountRange describes a discrete uniform draw: min + k*step for a random
// k in [0, (max-min)/step]. A degenerate 0/0 range always yields zero.
type AmountRange struct {
	Min  int64 `json:"min"`
	Max  int64 `json:"max" validate:"gtefield=Min"`
	Step int64 `json:"step"`
}

// HintLevel numbers the three progressively stronger hints.
type HintLevel int

const (
	HintNudge    HintLevel = 1 // Points at the underlying concept
	HintAccounts HintLevel = 2 // Names the accounts to use
	HintSolution HintLevel = 3 // Spells out the full posting
)

// Hint is one level of help for a transaction. Text may contain {amount} and
// {partial} placeholders which are resolved with the actual amounts.
type Hint struct {
	Level HintLevel `json:"level" validate:"min=1,max=3"`
	Text  string    `json:"text" validate:"required"`
}

// FeedbackTemplate is the message shown after a submission, optionally with
// an in-character quote from the sender.
type FeedbackTemplate struct {
	Message        string `json:"message"`
	CharacterQuote string `json:"characterQuote,omitempty"`
}

// EntryTemplate is one line of a correct-answer blueprint. Exactly one of
// DebitFormula/CreditFormula is non-empty; formulas are small arithmetic
// expressions over the generated variables ("amount", "partial",
// "amount - partial").
type EntryTemplate struct {
	Account       Account `json:"account" validate:"required"`
	DebitFormula  string  `json:"debitFormula,omitempty"`
	CreditFormula string  `json:"creditFormula,omitempty"`
}

// TransactionTemplate is an author-authored blueprint for one transaction,
// with ranges and formulas instead of concrete numbers. Immutable; the
// generator draws one template per pool per simulation.
type TransactionTemplate struct {
	TemplateID      string      `json:"templateID" validate:"required"`
	PoolID          string      `json:"poolID" validate:"required"`
	Sender          Character   `json:"sender"`
	MessageTemplate string      `json:"messageTemplate" validate:"required"`
	Attachment      *Attachment `json:"attachment,omitempty"`

	AmountRange         AmountRange  `json:"amountRange"`
	PartialPaymentRange *AmountRange `json:"partialPaymentRange,omitempty"` // Percentage range for split payments

	CorrectAnswer []EntryTemplate `json:"correctAnswerTemplate" validate:"min=2,dive"`

	Hints             []Hint           `json:"hints" validate:"dive"`
	FeedbackCorrect   FeedbackTemplate `json:"feedbackCorrect"`
	FeedbackIncorrect FeedbackTemplate `json:"feedbackIncorrect"`

	RequiresMultipleRows bool `json:"requiresMultipleRows"`

	// AllowAmountMismatch marks templates whose chat message may deliberately
	// show a different amount than the attached document.
	AllowAmountMismatch bool `json:"allowAmountMismatch"`
}

// TransactionPool is an ordered group of interchangeable templates bound to
// one slot in the session sequence. Exactly one template is drawn per pool.
type TransactionPool struct {
	PoolID    string                `json:"poolID" validate:"required"`
	TimeSlot  string                `json:"timeSlot"` // e.g. "08:30"
	Label     string                `json:"label"`
	Templates []TransactionTemplate `json:"templates" validate:"min=1,dive"`
}
