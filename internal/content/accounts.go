// Package content is the built-in scenario library for the lunchroom
// simulation: the chart of accounts, the cast, the transaction template
// pools and the document renderer. Everything here is immutable reference
// data; the engine receives it through its constructors and never reaches
// back into this package.
package content

import "github.com/freshbites/journalsim/internal/core/domain"

// Accounts is the chart of accounts available to the learner, in the order
// the account picker shows them.
var Accounts = []domain.Account{
	// Activa
	{AccountID: "kas", Name: "Kas", Type: domain.Asset, NormalBalance: domain.DebitSide},
	{AccountID: "bank", Name: "Bank", Type: domain.Asset, NormalBalance: domain.DebitSide},
	{AccountID: "debiteuren", Name: "Debiteuren", Type: domain.Asset, NormalBalance: domain.DebitSide},
	{AccountID: "voorraad", Name: "Voorraad", Type: domain.Asset, NormalBalance: domain.DebitSide},
	{AccountID: "inventaris", Name: "Inventaris", Type: domain.Asset, NormalBalance: domain.DebitSide},

	// Passiva
	{AccountID: "crediteuren", Name: "Crediteuren", Type: domain.Liability, NormalBalance: domain.CreditSide},

	// Opbrengsten
	{AccountID: "omzet", Name: "Omzet", Type: domain.Revenue, NormalBalance: domain.CreditSide},

	// Kosten
	{AccountID: "inkoopwaarde", Name: "Inkoopwaarde omzet", Type: domain.Expense, NormalBalance: domain.DebitSide},
	{AccountID: "huurkosten", Name: "Huurkosten", Type: domain.Expense, NormalBalance: domain.DebitSide},
	{AccountID: "loonkosten", Name: "Loonkosten", Type: domain.Expense, NormalBalance: domain.DebitSide},
	{AccountID: "overige_kosten", Name: "Overige kosten", Type: domain.Expense, NormalBalance: domain.DebitSide},
	{AccountID: "afschrijvingskosten", Name: "Afschrijvingskosten", Type: domain.Expense, NormalBalance: domain.DebitSide},
}

// AccountByID looks up an account in the chart. The second return value is
// false for unknown IDs.
func AccountByID(id string) (domain.Account, bool) {
	for _, a := range Accounts {
		if a.AccountID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

// AccountsByType groups the chart for the account picker, keyed by
// accounting type.
func AccountsByType() map[domain.AccountType][]domain.Account {
	grouped := make(map[domain.AccountType][]domain.Account)
	for _, a := range Accounts {
		grouped[a.Type] = append(grouped[a.Type], a)
	}
	return grouped
}

// mustAccount panics on an unknown ID. Only used by the static template
// tables below, where a typo is a programming error.
func mustAccount(id string) domain.Account {
	a, ok := AccountByID(id)
	if !ok {
		panic("content: unknown account " + id)
	}
	return a
}
