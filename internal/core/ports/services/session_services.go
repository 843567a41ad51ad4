package services

import (
	"context"

	"github.com/freshbites/journalsim/internal/core/domain"
	"github.com/freshbites/journalsim/internal/dto"
)

// SessionSvcFacade orchestrates a learner session: generation, unlock
// sequencing, submissions, hints, timers and scoring. All state transitions
// replace the progress snapshot wholesale before persisting it.
type SessionSvcFacade interface {
	// InitializeSession generates a fresh simulation and its initial progress.
	// An empty seed derives one from the user ID and the clock.
	InitializeSession(ctx context.Context, userID, seed string) (*domain.Simulation, *domain.UserProgress, error)

	// GetSession loads a stored simulation with its progress.
	GetSession(ctx context.Context, simulationID string) (*domain.Simulation, *domain.UserProgress, error)

	// StartTransaction activates an unlocked transaction and starts its
	// countdown (if timed). Restarting the active transaction replaces the
	// running countdown rather than stacking a second one.
	StartTransaction(ctx context.Context, simulationID, transactionID string) (*domain.UserProgress, error)

	// SubmitAnswer validates a posting, scores it, and advances the session
	// on success or on attempt exhaustion.
	SubmitAnswer(ctx context.Context, simulationID, transactionID string, entries []domain.JournalEntry) (*dto.SubmissionOutcome, error)

	// UseHint reveals a hint level (idempotently) and returns its resolved text.
	UseHint(ctx context.Context, simulationID, transactionID string, level domain.HintLevel) (*domain.Hint, *domain.UserProgress, error)

	// PauseTransaction / ResumeTransaction suspend and restart the countdown
	// from the stored remaining time.
	PauseTransaction(ctx context.Context, simulationID, transactionID string) (*domain.UserProgress, error)
	ResumeTransaction(ctx context.Context, simulationID, transactionID string) (*domain.UserProgress, error)

	// GetSummary computes the end-screen totals, tier and statistics.
	GetSummary(ctx context.Context, simulationID string) (*dto.SessionSummary, error)

	// ResetSession stops all timers and discards the stored session.
	ResetSession(ctx context.Context, simulationID string) error
}
