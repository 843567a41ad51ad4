package dto

import (
	"github.com/freshbites/journalsim/internal/core/domain"
)

// CreateSessionRequest starts a new simulation session. Seed is optional;
// when empty the service derives one from the user ID and the clock.
type CreateSessionRequest struct {
	UserID string `json:"userID" binding:"required"`
	Seed   string `json:"seed"`
}

// JournalEntryRequest is one submitted posting line. AccountID references
// the chart of accounts; at most one of debit/credit should be set, but the
// validator diagnoses violations instead of the binding layer rejecting them.
type JournalEntryRequest struct {
	AccountID string  `json:"accountID" binding:"required"`
	Debit     *string `json:"debit"`
	Credit    *string `json:"credit"`
}

// SubmitAnswerRequest carries the learner's full posting for one transaction.
type SubmitAnswerRequest struct {
	Entries []JournalEntryRequest `json:"entries" binding:"required,dive"`
}

// SubmissionOutcome bundles everything the orchestrator produces for one
// submission: the verdict, scoring, feedback, and the new progress snapshot.
type SubmissionOutcome struct {
	Result            domain.ValidationResult `json:"result"`
	StarsEarned       float64                 `json:"starsEarned"`
	AttemptsRemaining int                     `json:"attemptsRemaining"`

	// ShowSolution is set after the final failed attempt; Solution is only
	// populated alongside it.
	ShowSolution bool                  `json:"showSolution"`
	Solution     []domain.JournalEntry `json:"solution,omitempty"`

	Feedback domain.FeedbackTemplate `json:"feedback"`

	TransactionCompleted bool `json:"transactionCompleted"`
	SessionCompleted     bool `json:"sessionCompleted"`

	Progress domain.UserProgress `json:"progress"`
}

// SessionSummary is the end-screen payload.
type SessionSummary struct {
	Stars       float64                     `json:"stars"` // Rounded to nearest 0.5
	TotalScore  float64                     `json:"totalScore"`
	Performance domain.PerformanceResult    `json:"performance"`
	Statistics  domain.SimulationStatistics `json:"statistics"`
}
