package content

import "github.com/freshbites/journalsim/internal/core/domain"

// The cast of the lunchroom. Chat messages arrive from one of these three
// senders.
var (
	ChefMo = domain.Character{
		CharacterID:        "chef_mo",
		Name:               "Chef Mo",
		Role:               "Kok",
		Avatar:             "👨‍🍳",
		CommunicationStyle: domain.Informal,
	}
	Fatima = domain.Character{
		CharacterID:        "fatima",
		Name:               "Fatima",
		Role:               "Eigenaar",
		Avatar:             "👩‍💼",
		CommunicationStyle: domain.Formal,
	}
	System = domain.Character{
		CharacterID:        "system",
		Name:               "Systeem",
		Role:               "Notificatie",
		Avatar:             "🔔",
		CommunicationStyle: domain.Neutral,
	}
)

// Characters indexes the cast by ID.
var Characters = map[string]domain.Character{
	ChefMo.CharacterID: ChefMo,
	Fatima.CharacterID: Fatima,
	System.CharacterID: System,
}
