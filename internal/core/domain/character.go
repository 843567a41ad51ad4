package domain

// CommunicationStyle colours how a character phrases chat messages.
type CommunicationStyle string

const (
	Informal CommunicationStyle = "INFORMAL"
	Formal   CommunicationStyle = "FORMAL"
	Neutral  CommunicationStyle = "NEUTRAL"
)

// Character is a member of the simulated business who sends transaction
// messages to the learner. Immutable reference data.
type Character struct {
	CharacterID        string             `json:"characterID"`
	Name               string             `json:"name"`
	Role               string             `json:"role"`
	Avatar             string             `json:"avatar"` // Emoji shown next to the message bubble
	CommunicationStyle CommunicationStyle `json:"communicationStyle"`
}
