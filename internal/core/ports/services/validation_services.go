package services

import "github.com/freshbites/journalsim/internal/core/domain"

// ValidationSvc scores a submitted posting against the generated correct
// answer. Pure and reentrant: identical inputs always produce an identical
// result, and learner mistakes never surface as Go errors.
type ValidationSvc interface {
	// Validate compares the learner's entries with the correct answer.
	// transaction may be nil; when present it enables amount-mismatch
	// detection against the chat display amount.
	Validate(userEntries, correctAnswer []domain.JournalEntry, transaction *domain.GeneratedTransaction) domain.ValidationResult
}
