package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbites/journalsim/internal/core/domain"
	"github.com/freshbites/journalsim/internal/core/services"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func entry(accountID string, debit, credit *decimal.Decimal) domain.JournalEntry {
	return domain.JournalEntry{
		Account: domain.Account{AccountID: accountID, Name: accountID},
		Debit:   debit,
		Credit:  credit,
	}
}

// correctPurchase is the reference answer used across these tests:
// voorraad 400 debet / kas 400 credit.
func correctPurchase() []domain.JournalEntry {
	return []domain.JournalEntry{
		entry("voorraad", dec(400), nil),
		entry("kas", nil, dec(400)),
	}
}

func errorTypes(result domain.ValidationResult) []domain.ValidationErrorType {
	types := make([]domain.ValidationErrorType, len(result.Errors))
	for i, e := range result.Errors {
		types[i] = e.Type
	}
	return types
}

func TestValidate_CorrectAnswer(t *testing.T) {
	svc := services.NewValidationService()

	result := svc.Validate(correctPurchase(), correctPurchase(), nil)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.True(t, result.BalanceCheck.IsBalanced)
	require.Len(t, result.EntryMatches, 2)
	for _, m := range result.EntryMatches {
		assert.True(t, m.IsCorrect)
	}
}

func TestValidate_RowOrderIrrelevant(t *testing.T) {
	svc := services.NewValidationService()

	swapped := []domain.JournalEntry{
		entry("kas", nil, dec(400)),
		entry("voorraad", dec(400), nil),
	}
	result := svc.Validate(swapped, correctPurchase(), nil)
	assert.True(t, result.IsValid)
}

func TestValidate_EmptySubmission(t *testing.T) {
	svc := services.NewValidationService()

	result := svc.Validate(nil, correctPurchase(), nil)
	assert.False(t, result.IsValid)
	assert.Contains(t, errorTypes(result), domain.ErrTypeEmptyEntry)
}

func TestValidate_HalfFilledRow(t *testing.T) {
	svc := services.NewValidationService()

	rows := []domain.JournalEntry{
		entry("voorraad", dec(400), nil),
		entry("kas", nil, nil), // account chosen, no amount
	}
	result := svc.Validate(rows, correctPurchase(), nil)
	assert.False(t, result.IsValid)

	require.Contains(t, errorTypes(result), domain.ErrTypeEmptyEntry)
	for _, e := range result.Errors {
		if e.Type == domain.ErrTypeEmptyEntry {
			require.NotNil(t, e.AffectedRowIndex)
			assert.Equal(t, 1, *e.AffectedRowIndex)
		}
	}
}

func TestValidate_NotBalanced(t *testing.T) {
	svc := services.NewValidationService()

	rows := []domain.JournalEntry{
		entry("voorraad", dec(400), nil),
		entry("kas", nil, dec(300)),
	}
	result := svc.Validate(rows, correctPurchase(), nil)

	assert.False(t, result.IsValid)
	assert.Contains(t, errorTypes(result), domain.ErrTypeNotBalanced)
	assert.False(t, result.BalanceCheck.IsBalanced)
	assert.True(t, result.BalanceCheck.DebitTotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, result.BalanceCheck.CreditTotal.Equal(decimal.NewFromInt(300)))
}

func TestValidate_MissingAndExtraEntries(t *testing.T) {
	svc := services.NewValidationService()

	// One required line missing, one alien line present.
	rows := []domain.JournalEntry{
		entry("voorraad", dec(400), nil),
		entry("bank", nil, dec(400)),
	}
	result := svc.Validate(rows, correctPurchase(), nil)

	assert.False(t, result.IsValid)
	types := errorTypes(result)
	assert.Contains(t, types, domain.ErrTypeMissingEntry)
	assert.Contains(t, types, domain.ErrTypeExtraEntries)

	// The alien line is diagnosed as a wrong account.
	var wrongAccount bool
	for _, m := range result.EntryMatches {
		if !m.IsCorrect {
			assert.Contains(t, m.Issues, "Verkeerde rekening")
			wrongAccount = true
		}
	}
	assert.True(t, wrongAccount)
}

func TestValidate_WrongAmountOnRightAccount(t *testing.T) {
	svc := services.NewValidationService()

	rows := []domain.JournalEntry{
		entry("voorraad", dec(350), nil),
		entry("kas", nil, dec(350)),
	}
	result := svc.Validate(rows, correctPurchase(), nil)

	assert.False(t, result.IsValid)
	assert.Contains(t, errorTypes(result), domain.ErrTypeIncorrectEntry)

	for _, m := range result.EntryMatches {
		require.False(t, m.IsCorrect)
		require.NotNil(t, m.ExpectedEntry)
		assert.Equal(t, m.UserEntry.Account.AccountID, m.ExpectedEntry.Account.AccountID)
	}
}

func TestValidate_AmountMismatchWarning(t *testing.T) {
	svc := services.NewValidationService()

	display := decimal.NewFromInt(430)
	txn := &domain.GeneratedTransaction{
		HasAmountMismatch: true,
		ActualAmount:      decimal.NewFromInt(400),
		DisplayAmount:     &display,
	}

	// Learner booked the chat amount: wrong, and the warning comes first.
	rows := []domain.JournalEntry{
		entry("voorraad", dec(430), nil),
		entry("kas", nil, dec(430)),
	}
	result := svc.Validate(rows, correctPurchase(), txn)

	require.False(t, result.IsValid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, domain.ErrTypeAmountMismatch, result.Errors[0].Type)
	assert.Contains(t, result.Errors[0].Message, "430")
	assert.Contains(t, result.Errors[0].Message, "400")
}

func TestValidate_NoMismatchWarningWhenDocumentAmountUsed(t *testing.T) {
	svc := services.NewValidationService()

	display := decimal.NewFromInt(430)
	txn := &domain.GeneratedTransaction{
		HasAmountMismatch: true,
		ActualAmount:      decimal.NewFromInt(400),
		DisplayAmount:     &display,
	}

	// Correct posting with the document amount: no errors at all.
	result := svc.Validate(correctPurchase(), correctPurchase(), txn)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidate_MismatchWarningOnlyAlongsideOtherErrors(t *testing.T) {
	svc := services.NewValidationService()

	display := decimal.NewFromInt(430)
	txn := &domain.GeneratedTransaction{
		HasAmountMismatch: true,
		ActualAmount:      decimal.NewFromInt(400),
		DisplayAmount:     &display,
	}

	// Wrong account but document amount used: errors, yet no mismatch warning.
	rows := []domain.JournalEntry{
		entry("bank", dec(400), nil),
		entry("kas", nil, dec(400)),
	}
	result := svc.Validate(rows, correctPurchase(), txn)

	assert.False(t, result.IsValid)
	assert.NotContains(t, errorTypes(result), domain.ErrTypeAmountMismatch)
}

func TestValidate_Idempotent(t *testing.T) {
	svc := services.NewValidationService()

	rows := []domain.JournalEntry{
		entry("voorraad", dec(350), nil),
		entry("kas", nil, dec(300)),
	}
	first := svc.Validate(rows, correctPurchase(), nil)
	second := svc.Validate(rows, correctPurchase(), nil)
	assert.Equal(t, first, second)
}
