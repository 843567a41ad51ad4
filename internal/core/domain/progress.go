package domain

import "time"

// SimulationStatus is the overall state of a learner session.
type SimulationStatus string

const (
	SessionNotStarted SimulationStatus = "NOT_STARTED"
	SessionInProgress SimulationStatus = "IN_PROGRESS"
	SessionCompleted  SimulationStatus = "COMPLETED"
)

// TransactionStatus is the per-transaction unlock state. Only the
// transaction at the current index may be ACTIVE; all later ones stay
// LOCKED until it completes.
type TransactionStatus string

const (
	TransactionLocked    TransactionStatus = "LOCKED"
	TransactionActive    TransactionStatus = "ACTIVE"
	TransactionCompleted TransactionStatus = "COMPLETED"
)

// TimerStatus is a display state computed from the remaining time; it is
// never persisted separately.
type TimerStatus string

const (
	TimerNormal   TimerStatus = "NORMAL"
	TimerWarning  TimerStatus = "WARNING"
	TimerCritical TimerStatus = "CRITICAL"
	TimerExpired  TimerStatus = "EXPIRED"
)

// TransactionProgress is the mutable per-transaction session state. State
// transitions replace the whole value (copy-on-write); observers always see
// a consistent snapshot.
type TransactionProgress struct {
	TransactionID string            `json:"transactionID"`
	Status        TransactionStatus `json:"status"`

	Attempts    int         `json:"attempts"`    // 0..3
	HintsViewed []HintLevel `json:"hintsViewed"` // Monotonically growing, each level at most once

	CurrentEntry []JournalEntry `json:"currentEntry"`
	IsCorrect    *bool          `json:"isCorrect"` // nil until first submission

	StarsEarned float64 `json:"starsEarned"`

	TimeLimit     int  `json:"timeLimit"` // Seconds; 0 = untimed
	TimeRemaining int  `json:"timeRemaining"`
	TimeExpired   bool `json:"timeExpired"`

	// Pausing suspends the countdown; the remaining time freezes until resume.
	IsPaused bool       `json:"isPaused"`
	PausedAt *time.Time `json:"pausedAt,omitempty"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// HintsUsed is the number of distinct hint levels revealed.
func (p TransactionProgress) HintsUsed() int {
	return len(p.HintsViewed)
}

// HasViewedHint reports whether the given level was already revealed.
func (p TransactionProgress) HasViewedHint(level HintLevel) bool {
	for _, l := range p.HintsViewed {
		if l == level {
			return true
		}
	}
	return false
}

// TimerStatusAt derives the display state of the countdown for a remaining
// time, given the configured thresholds.
func TimerStatusAt(remaining, warningThreshold, criticalThreshold int) TimerStatus {
	switch {
	case remaining <= 0:
		return TimerExpired
	case remaining <= criticalThreshold:
		return TimerCritical
	case remaining <= warningThreshold:
		return TimerWarning
	default:
		return TimerNormal
	}
}

// UserProgress aggregates the session-level mutable state. The session owns
// it; every action replaces it wholesale.
type UserProgress struct {
	SimulationID string `json:"simulationID"`
	UserID       string `json:"userID"`
	Seed         string `json:"seed"`

	CurrentTransactionIndex int              `json:"currentTransactionIndex"` // 0-based
	Status                  SimulationStatus `json:"status"`

	// Stars is the displayed total, rounded to the nearest 0.5; TotalScore
	// keeps the exact running sum.
	Stars      float64 `json:"stars"`
	TotalScore float64 `json:"totalScore"`

	TransactionProgress map[string]TransactionProgress `json:"transactionProgress"`

	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	LastSavedAt time.Time  `json:"lastSavedAt"`
}

// CloneProgressMap copies the per-transaction map so a transition can build
// a fresh snapshot without mutating the published one.
func (u UserProgress) CloneProgressMap() map[string]TransactionProgress {
	out := make(map[string]TransactionProgress, len(u.TransactionProgress))
	for id, p := range u.TransactionProgress {
		out[id] = p
	}
	return out
}
