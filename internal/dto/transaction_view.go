package dto

import "github.com/freshbites/journalsim/internal/core/domain"

// TransactionView is the learner-facing projection of a generated
// transaction: it never exposes the correct answer, the actual amount or the
// mismatch bookkeeping, only what the chat UI may show.
type TransactionView struct {
	TransactionID     string             `json:"transactionID"`
	TransactionNumber int                `json:"transactionNumber"`
	TimeSlot          string             `json:"timeSlot"`
	Sender            domain.Character   `json:"sender"`
	Message           string             `json:"message"`
	Attachment        *domain.Attachment `json:"attachment,omitempty"`

	Status        domain.TransactionStatus `json:"status"`
	Attempts      int                      `json:"attempts"`
	HintsViewed   []domain.HintLevel       `json:"hintsViewed"`
	StarsEarned   float64                  `json:"starsEarned"`
	TimeLimit     int                      `json:"timeLimit"`
	TimeRemaining int                      `json:"timeRemaining"`
	TimerStatus   domain.TimerStatus       `json:"timerStatus"`
	TimeExpired   bool                     `json:"timeExpired"`
}

// NewTransactionView projects a transaction and its progress for the UI.
func NewTransactionView(txn domain.GeneratedTransaction, progress domain.TransactionProgress, config domain.SimulationConfig) TransactionView {
	status := domain.TimerStatusAt(progress.TimeRemaining, config.WarningThresholdSecs, config.CriticalThresholdSecs)
	if progress.TimeLimit == 0 {
		status = domain.TimerNormal // Untimed transactions never expire
	}
	return TransactionView{
		TransactionID:     txn.TransactionID,
		TransactionNumber: txn.TransactionNumber,
		TimeSlot:          txn.TimeSlot,
		Sender:            txn.Sender,
		Message:           txn.Message,
		Attachment:        txn.Attachment,
		Status:            progress.Status,
		Attempts:          progress.Attempts,
		HintsViewed:       progress.HintsViewed,
		StarsEarned:       progress.StarsEarned,
		TimeLimit:         progress.TimeLimit,
		TimeRemaining:     progress.TimeRemaining,
		TimerStatus:       status,
		TimeExpired:       progress.TimeExpired,
	}
}

// SessionResponse is the full session state for the UI: progress plus the
// per-transaction views in unlock order.
type SessionResponse struct {
	SimulationID string                  `json:"simulationID"`
	Seed         string                  `json:"seed"`
	UserID       string                  `json:"userID"`
	Status       domain.SimulationStatus `json:"status"`
	Stars        float64                 `json:"stars"`
	TotalScore   float64                 `json:"totalScore"`
	CurrentIndex int                     `json:"currentTransactionIndex"`
	Transactions []TransactionView       `json:"transactions"`
}

// NewSessionResponse projects a simulation and its progress for the UI.
func NewSessionResponse(sim domain.Simulation, progress domain.UserProgress) SessionResponse {
	views := make([]TransactionView, 0, len(sim.Transactions))
	for _, txn := range sim.Transactions {
		views = append(views, NewTransactionView(txn, progress.TransactionProgress[txn.TransactionID], sim.Config))
	}
	return SessionResponse{
		SimulationID: sim.SimulationID,
		Seed:         sim.Seed,
		UserID:       sim.UserID,
		Status:       progress.Status,
		Stars:        progress.Stars,
		TotalScore:   progress.TotalScore,
		CurrentIndex: progress.CurrentTransactionIndex,
		Transactions: views,
	}
}
