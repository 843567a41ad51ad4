package content

import "github.com/freshbites/journalsim/internal/core/domain"

// Pools is the day's transaction schedule: five time slots, each with a few
// interchangeable templates. The generator draws exactly one template per
// pool, so a session is always five transactions in this order.
//
// Message templates, hints and feedback contain {amount}, {partial} and
// small expressions like {amount - partial}; the generator resolves them
// with the drawn amounts.
var Pools = []domain.TransactionPool{
	{
		PoolID:   "pool_a",
		TimeSlot: "08:30",
		Label:    "Ochtend inkoop",
		Templates: []domain.TransactionTemplate{
			{
				TemplateID:      "a1_voorraad_contant",
				PoolID:          "pool_a",
				Sender:          ChefMo,
				MessageTemplate: "Hey! Net €{amount} aan verse ingrediënten gekocht bij de groothandel. Heb contant betaald uit de kas. Kun je dit even boeken? 🥬🍅",
				Attachment: &domain.Attachment{
					Type:     domain.AttachmentHTML,
					Filename: "Kassabon Groothandel.html",
				},
				AmountRange: domain.AmountRange{Min: 250, Max: 600, Step: 50},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("voorraad"), DebitFormula: "amount"},
					{Account: mustAccount("kas"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Je koopt iets (voorraad neemt toe) en betaalt contant (kas neemt af). Welke kant is debet, welke credit?"},
					{Level: domain.HintAccounts, Text: "Gebruik de rekeningen \"Voorraad\" en \"Kas\". Voorraad is een actief, dus toename = debet."},
					{Level: domain.HintSolution, Text: "Voorraad €{amount} debet, Kas €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Goed geboekt!",
					CharacterQuote: "Top, dan weet ik dat de administratie klopt als ik boodschappen doe! 👍",
				},
				FeedbackIncorrect:   domain.FeedbackTemplate{Message: "Dat klopt nog niet helemaal."},
				AllowAmountMismatch: true,
			},
			{
				TemplateID:      "a2_voorraad_rekening",
				PoolID:          "pool_a",
				Sender:          ChefMo,
				MessageTemplate: "Morgen! Ingrediënten besteld voor €{amount}. Betalen we volgende week aan de leverancier. 📦",
				Attachment: &domain.Attachment{
					Type:     domain.AttachmentHTML,
					Filename: "Factuur Leverancier.html",
				},
				AmountRange: domain.AmountRange{Min: 300, Max: 700, Step: 50},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("voorraad"), DebitFormula: "amount"},
					{Account: mustAccount("crediteuren"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Je ontvangt voorraad (toename actief) maar betaalt nog niet. Wat voor schuld ontstaat er?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Voorraad\" (debet) en \"Crediteuren\" (credit)."},
					{Level: domain.HintSolution, Text: "Voorraad €{amount} debet, Crediteuren €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Perfect!",
					CharacterQuote: "Crediteuren, dat is de leverancier waar we nog aan moeten betalen toch? 📝",
				},
				FeedbackIncorrect:   domain.FeedbackTemplate{Message: "Niet helemaal correct."},
				AllowAmountMismatch: true,
			},
		},
	},
	{
		PoolID:   "pool_b",
		TimeSlot: "09:15",
		Label:    "Verkoop",
		Templates: []domain.TransactionTemplate{
			{
				TemplateID:      "b1_verkoop_factuur",
				PoolID:          "pool_b",
				Sender:          Fatima,
				MessageTemplate: "Goed nieuws! We hebben net een cateringopdracht verkocht aan een advocatenkantoor. {amount} broodjes voor €{amount}. Ze betalen over 14 dagen, ik heb een factuur gestuurd. 📊",
				Attachment: &domain.Attachment{
					Type:     domain.AttachmentHTML,
					Filename: "Factuur Advocatenkantoor.html",
				},
				AmountRange: domain.AmountRange{Min: 200, Max: 500, Step: 50},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("debiteuren"), DebitFormula: "amount"},
					{Account: mustAccount("omzet"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Je verkoopt iets (omzet) maar krijgt het geld nog niet meteen. Wat gebeurt er met je vordering?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Debiteuren\" (debet) voor de vordering en \"Omzet\" (credit) voor de verkoop."},
					{Level: domain.HintSolution, Text: "Debiteuren €{amount} debet, Omzet €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Goed geboekt!",
					CharacterQuote: "Precies, we hebben de omzet, maar het geld nog niet. Daarom debiteuren! 📊",
				},
				FeedbackIncorrect:   domain.FeedbackTemplate{Message: "Nog niet helemaal goed."},
				AllowAmountMismatch: true,
			},
			{
				TemplateID:      "b2_verkoop_contant",
				PoolID:          "pool_b",
				Sender:          ChefMo,
				MessageTemplate: "Yes! Net een grote bestelling verkocht voor €{amount} contant. Het geld zit in de kas! 💰",
				AmountRange:     domain.AmountRange{Min: 150, Max: 400, Step: 25},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("kas"), DebitFormula: "amount"},
					{Account: mustAccount("omzet"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Je verkoopt iets en krijgt direct contant geld. Welke rekening neemt toe?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Kas\" (debet) voor het ontvangen geld en \"Omzet\" (credit) voor de verkoop."},
					{Level: domain.HintSolution, Text: "Kas €{amount} debet, Omzet €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Prima geboekt!",
					CharacterQuote: "Lekker veel contant geld binnen! 💵",
				},
				FeedbackIncorrect:   domain.FeedbackTemplate{Message: "Kijk nog eens goed."},
				AllowAmountMismatch: true,
			},
		},
	},
	{
		PoolID:   "pool_c",
		TimeSlot: "10:45",
		Label:    "Vaste lasten",
		Templates: []domain.TransactionTemplate{
			{
				TemplateID:      "c1_huur",
				PoolID:          "pool_c",
				Sender:          System,
				MessageTemplate: "Automatische incasso uitgevoerd: Huur standplaats Marktplein - €{amount}. Afgeschreven van zakelijke bankrekening.",
				AmountRange:     domain.AmountRange{Min: 100, Max: 250, Step: 25},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("huurkosten"), DebitFormula: "amount"},
					{Account: mustAccount("bank"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Huur is een kostensoort. Kosten gaan altijd in de debet. Hoe betaal je?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Huurkosten\" (debet) en \"Bank\" (credit)."},
					{Level: domain.HintSolution, Text: "Huurkosten €{amount} debet, Bank €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Goed geboekt!",
					CharacterQuote: "Kosten gaan altijd in de debet. Je bankrekening (actief) neemt af, dus credit.",
				},
				FeedbackIncorrect: domain.FeedbackTemplate{Message: "Let op de aard van de rekeningen."},
			},
			{
				TemplateID:      "c2_verzekering",
				PoolID:          "pool_c",
				Sender:          System,
				MessageTemplate: "Automatische incasso uitgevoerd: Bedrijfsverzekering - €{amount}. Afgeschreven van zakelijke bankrekening.",
				AmountRange:     domain.AmountRange{Min: 75, Max: 200, Step: 25},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("overige_kosten"), DebitFormula: "amount"},
					{Account: mustAccount("bank"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Verzekering is een kostensoort. Welke rekening gebruik je hiervoor?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Overige kosten\" (debet) en \"Bank\" (credit)."},
					{Level: domain.HintSolution, Text: "Overige kosten €{amount} debet, Bank €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Correct geboekt!",
					CharacterQuote: "Verzekeringen vallen onder overige kosten.",
				},
				FeedbackIncorrect: domain.FeedbackTemplate{Message: "Probeer opnieuw."},
			},
			{
				TemplateID:      "c3_software",
				PoolID:          "pool_c",
				Sender:          System,
				MessageTemplate: "Automatische incasso uitgevoerd: Software abonnement (boekhoudprogramma) - €{amount}. Afgeschreven van zakelijke bankrekening.",
				AmountRange:     domain.AmountRange{Min: 50, Max: 150, Step: 10},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("overige_kosten"), DebitFormula: "amount"},
					{Account: mustAccount("bank"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Software abonnementen zijn bedrijfskosten. Hoe boek je dit?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Overige kosten\" (debet) en \"Bank\" (credit)."},
					{Level: domain.HintSolution, Text: "Overige kosten €{amount} debet, Bank €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Prima!",
					CharacterQuote: "Software valt ook onder overige kosten.",
				},
				FeedbackIncorrect: domain.FeedbackTemplate{Message: "Kijk nog eens."},
			},
		},
	},
	{
		PoolID:   "pool_d",
		TimeSlot: "12:30",
		Label:    "Inventaris aankoop",
		Templates: []domain.TransactionTemplate{
			{
				TemplateID:      "d1_inventaris_split",
				PoolID:          "pool_d",
				Sender:          ChefMo,
				MessageTemplate: "De frituurpan is kapot 😱 Heb meteen een nieuwe gekocht voor €{amount}. Ik heb €{partial} contant betaald, de rest betalen we volgende maand aan de leverancier.",
				Attachment: &domain.Attachment{
					Type:     domain.AttachmentHTML,
					Filename: "Factuur Keukengigant.html",
				},
				AmountRange:         domain.AmountRange{Min: 400, Max: 900, Step: 100},
				PartialPaymentRange: &domain.AmountRange{Min: 25, Max: 50, Step: 5}, // Percentage of the total
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("inventaris"), DebitFormula: "amount"},
					{Account: mustAccount("kas"), CreditFormula: "partial"},
					{Account: mustAccount("crediteuren"), CreditFormula: "amount - partial"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Je koopt inventaris, betaalt deels contant en hebt een schuld voor de rest. Hoeveel regels heb je nodig?"},
					{Level: domain.HintAccounts, Text: "Drie regels: Inventaris (debet €{amount}), Kas (credit €{partial}), Crediteuren (credit voor de rest)."},
					{Level: domain.HintSolution, Text: "Inventaris €{amount} debet, Kas €{partial} credit, Crediteuren €{amount - partial} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Goed geboekt!",
					CharacterQuote: "Mooi! Drie regels, maar het klopt. Nu kan ik weer frituren! 🍟",
				},
				FeedbackIncorrect:    domain.FeedbackTemplate{Message: "Let op: deze transactie heeft drie regels nodig."},
				RequiresMultipleRows: true,
				AllowAmountMismatch:  true,
			},
			{
				TemplateID:      "d2_reparatie_split",
				PoolID:          "pool_d",
				Sender:          ChefMo,
				MessageTemplate: "De koelkast was stuk, gelukkig kon de technicus hem repareren voor €{amount}. Ik heb €{partial} contant betaald, de rest komt op de factuur volgende maand.",
				Attachment: &domain.Attachment{
					Type:     domain.AttachmentHTML,
					Filename: "Factuur Reparatie.html",
				},
				AmountRange:         domain.AmountRange{Min: 200, Max: 500, Step: 50},
				PartialPaymentRange: &domain.AmountRange{Min: 30, Max: 60, Step: 5}, // Percentage of the total
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("overige_kosten"), DebitFormula: "amount"},
					{Account: mustAccount("kas"), CreditFormula: "partial"},
					{Account: mustAccount("crediteuren"), CreditFormula: "amount - partial"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Reparaties zijn kosten, geen inventaris. Je betaalt deels contant. Hoeveel regels?"},
					{Level: domain.HintAccounts, Text: "Drie regels: Overige kosten (debet €{amount}), Kas (credit €{partial}), Crediteuren (credit voor de rest)."},
					{Level: domain.HintSolution, Text: "Overige kosten €{amount} debet, Kas €{partial} credit, Crediteuren €{amount - partial} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Perfect!",
					CharacterQuote: "Reparaties zijn kosten, geen inventaris. Je hebt het goed! 🔧",
				},
				FeedbackIncorrect:    domain.FeedbackTemplate{Message: "Let op: reparaties zijn kosten, geen inventaris."},
				RequiresMultipleRows: true,
				AllowAmountMismatch:  true,
			},
		},
	},
	{
		PoolID:   "pool_e",
		TimeSlot: "14:00",
		Label:    "Betalingsverkeer",
		Templates: []domain.TransactionTemplate{
			{
				TemplateID:      "e1_klant_betaalt",
				PoolID:          "pool_e",
				Sender:          Fatima,
				MessageTemplate: "Het advocatenkantoor heeft de factuur al betaald! €{amount} staat op de bank. Snelle betalers, die houden we erbij 😊",
				AmountRange:     domain.AmountRange{Min: 200, Max: 500, Step: 50},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("bank"), DebitFormula: "amount"},
					{Account: mustAccount("debiteuren"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Een klant betaalt zijn schuld. Wat gebeurt er met je vordering (debiteuren)?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Bank\" (debet) voor het ontvangen geld en \"Debiteuren\" (credit) omdat de vordering afneemt."},
					{Level: domain.HintSolution, Text: "Bank €{amount} debet, Debiteuren €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Goed geboekt!",
					CharacterQuote: "De debiteuren dalen, want ze zijn geen klant-met-schuld meer!",
				},
				FeedbackIncorrect: domain.FeedbackTemplate{Message: "Denk aan wat er gebeurt met je vordering."},
			},
			{
				TemplateID:      "e2_betaling_leverancier",
				PoolID:          "pool_e",
				Sender:          Fatima,
				MessageTemplate: "Ik heb zojuist €{amount} overgemaakt naar onze leverancier. We hadden nog een openstaande factuur.",
				AmountRange:     domain.AmountRange{Min: 200, Max: 500, Step: 50},
				CorrectAnswer: []domain.EntryTemplate{
					{Account: mustAccount("crediteuren"), DebitFormula: "amount"},
					{Account: mustAccount("bank"), CreditFormula: "amount"},
				},
				Hints: []domain.Hint{
					{Level: domain.HintNudge, Text: "Je betaalt een schuld aan een leverancier. Wat gebeurt er met crediteuren?"},
					{Level: domain.HintAccounts, Text: "Gebruik \"Crediteuren\" (debet) omdat de schuld afneemt en \"Bank\" (credit)."},
					{Level: domain.HintSolution, Text: "Crediteuren €{amount} debet, Bank €{amount} credit."},
				},
				FeedbackCorrect: domain.FeedbackTemplate{
					Message:        "Perfect!",
					CharacterQuote: "Schulden afbetalen voelt altijd goed! 💸",
				},
				FeedbackIncorrect: domain.FeedbackTemplate{Message: "Denk aan het effect op je schuld."},
			},
		},
	},
}

// PoolByID finds a pool in the schedule.
func PoolByID(id string) (domain.TransactionPool, bool) {
	for _, p := range Pools {
		if p.PoolID == id {
			return p, true
		}
	}
	return domain.TransactionPool{}, false
}

// TemplateByID searches every pool for a template.
func TemplateByID(id string) (domain.TransactionTemplate, bool) {
	for _, p := range Pools {
		for _, t := range p.Templates {
			if t.TemplateID == id {
				return t, true
			}
		}
	}
	return domain.TransactionTemplate{}, false
}
