package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freshbites/journalsim/internal/core/domain"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
)

// amountTolerance absorbs two-decimal rounding noise when comparing amounts.
var amountTolerance = decimal.NewFromFloat(0.01)

// validationService compares a learner's posting against the generated
// correct answer. Pure function of its inputs; no side effects.
type validationService struct{}

// NewValidationService creates a new ValidationSvc.
func NewValidationService() portssvc.ValidationSvc {
	return &validationService{}
}

// Ensure validationService implements the portssvc.ValidationSvc interface
var _ portssvc.ValidationSvc = (*validationService)(nil)

func (s *validationService) Validate(userEntries, correctAnswer []domain.JournalEntry, transaction *domain.GeneratedTransaction) domain.ValidationResult {
	var errs []domain.ValidationError

	// Step 1: the posting must have at least one filled row and no
	// half-filled ones.
	if emptyRow := firstEmptyRow(userEntries); len(userEntries) == 0 || emptyRow >= 0 {
		ve := domain.ValidationError{
			Type:    domain.ErrTypeEmptyEntry,
			Message: "Vul minimaal één regel in met rekening en bedrag.",
		}
		if emptyRow >= 0 {
			row := emptyRow
			ve.AffectedRowIndex = &row
		}
		errs = append(errs, ve)
	}

	// Step 2: debit and credit totals must balance within tolerance.
	debitTotal := sumSide(userEntries, true)
	creditTotal := sumSide(userEntries, false)
	isBalanced := debitTotal.Sub(creditTotal).Abs().LessThan(amountTolerance)

	balanceCheck := domain.BalanceCheck{
		IsBalanced:  isBalanced,
		DebitTotal:  debitTotal,
		CreditTotal: creditTotal,
	}
	if !isBalanced {
		errs = append(errs, domain.ValidationError{
			Type:    domain.ErrTypeNotBalanced,
			Message: fmt.Sprintf("Debet (€%s) is niet gelijk aan credit (€%s).", debitTotal.StringFixed(2), creditTotal.StringFixed(2)),
		})
	}

	// Step 3: pair off exact matches, then diagnose the leftovers.
	matches, missing, extra := matchEntries(userEntries, correctAnswer)

	if len(missing) > 0 {
		errs = append(errs, domain.ValidationError{
			Type:    domain.ErrTypeMissingEntry,
			Message: fmt.Sprintf("Je mist %d regel(s) in je journaalpost.", len(missing)),
		})
	}
	if len(extra) > 0 {
		errs = append(errs, domain.ValidationError{
			Type:    domain.ErrTypeExtraEntries,
			Message: fmt.Sprintf("Je hebt %d regel(s) te veel.", len(extra)),
		})
	}

	incorrectCount := 0
	for _, m := range matches {
		if !m.IsCorrect {
			incorrectCount++
		}
	}
	if incorrectCount > 0 {
		errs = append(errs, domain.ValidationError{
			Type:    domain.ErrTypeIncorrectEntry,
			Message: fmt.Sprintf("%d regel(s) zijn niet correct.", incorrectCount),
		})
	}

	// Step 4: when the transaction carries an intentional chat/document
	// difference and the posting already has errors, check whether the
	// learner trusted the chat amount over the document. The mismatch
	// warning is prepended as the highest-priority error.
	if transaction != nil && transaction.HasAmountMismatch && transaction.DisplayAmount != nil && len(errs) > 0 {
		if usedDisplayAmount(userEntries, *transaction.DisplayAmount, transaction.ActualAmount) {
			warning := domain.ValidationError{
				Type: domain.ErrTypeAmountMismatch,
				Message: fmt.Sprintf(
					"⚠️ Let op! Het bedrag in de chat (€%s) komt niet overeen met het bedrag op de factuur (€%s). Controleer altijd de bijgevoegde documenten! 📋",
					transaction.DisplayAmount.StringFixed(2), transaction.ActualAmount.StringFixed(2)),
			}
			errs = append([]domain.ValidationError{warning}, errs...)
		}
	}

	return domain.ValidationResult{
		IsValid:      len(errs) == 0,
		Errors:       errs,
		BalanceCheck: balanceCheck,
		EntryMatches: matches,
	}
}

// firstEmptyRow returns the index of the first row with no account or no
// amount on either side, or -1 when all rows are filled.
func firstEmptyRow(entries []domain.JournalEntry) int {
	for i, e := range entries {
		if e.Account.AccountID == "" {
			return i
		}
		if e.Debit == nil && e.Credit == nil {
			return i
		}
		if e.DebitOrZero().IsZero() && e.CreditOrZero().IsZero() {
			return i
		}
	}
	return -1
}

func sumSide(entries []domain.JournalEntry, debit bool) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if debit {
			total = total.Add(e.DebitOrZero())
		} else {
			total = total.Add(e.CreditOrZero())
		}
	}
	return total
}

// matchEntries removes exact matches pairwise from both sides, then explains
// each remaining learner entry: wrong amount against the same account when
// one exists, otherwise a wrong account. Remaining correct-answer entries
// are the learner's omissions.
func matchEntries(userEntries, correctAnswer []domain.JournalEntry) (matches []domain.EntryMatchResult, missing, extra []domain.JournalEntry) {
	correctUsed := make([]bool, len(correctAnswer))
	userMatched := make([]bool, len(userEntries))

	for i, userRow := range userEntries {
		for j, correctRow := range correctAnswer {
			if correctUsed[j] || !entriesMatch(userRow, correctRow) {
				continue
			}
			expected := correctRow
			matches = append(matches, domain.EntryMatchResult{
				UserEntry:     userRow,
				ExpectedEntry: &expected,
				IsCorrect:     true,
				Issues:        []string{},
			})
			correctUsed[j] = true
			userMatched[i] = true
			break
		}
	}

	for i, userRow := range userEntries {
		if userMatched[i] {
			continue
		}
		var issues []string
		var closest *domain.JournalEntry
		for j, correctRow := range correctAnswer {
			if correctUsed[j] || correctRow.Account.AccountID != userRow.Account.AccountID {
				continue
			}
			expected := correctRow
			closest = &expected
			if userRow.DebitOrZero().Sub(correctRow.DebitOrZero()).Abs().GreaterThanOrEqual(amountTolerance) {
				issues = append(issues, "Verkeerd debetbedrag")
			}
			if userRow.CreditOrZero().Sub(correctRow.CreditOrZero()).Abs().GreaterThanOrEqual(amountTolerance) {
				issues = append(issues, "Verkeerd creditbedrag")
			}
			break
		}
		if closest == nil {
			issues = append(issues, "Verkeerde rekening")
		}
		matches = append(matches, domain.EntryMatchResult{
			UserEntry:     userRow,
			ExpectedEntry: closest,
			IsCorrect:     false,
			Issues:        issues,
		})
		extra = append(extra, userRow)
	}

	for j, correctRow := range correctAnswer {
		if !correctUsed[j] {
			missing = append(missing, correctRow)
		}
	}
	return matches, missing, extra
}

func entriesMatch(a, b domain.JournalEntry) bool {
	return a.Account.AccountID == b.Account.AccountID &&
		a.DebitOrZero().Sub(b.DebitOrZero()).Abs().LessThan(amountTolerance) &&
		a.CreditOrZero().Sub(b.CreditOrZero()).Abs().LessThan(amountTolerance)
}

// usedDisplayAmount reports whether any entry's amount equals the chat
// display amount without also equaling the document amount. This is the
// signature of trusting the message over the attached document.
func usedDisplayAmount(entries []domain.JournalEntry, displayAmount, actualAmount decimal.Decimal) bool {
	for _, e := range entries {
		amount := e.DebitOrZero().Add(e.CreditOrZero())
		matchesDisplay := amount.Sub(displayAmount).Abs().LessThan(amountTolerance)
		matchesActual := amount.Sub(actualAmount).Abs().LessThan(amountTolerance)
		if matchesDisplay && !matchesActual {
			return true
		}
	}
	return false
}
