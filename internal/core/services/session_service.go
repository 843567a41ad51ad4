package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/freshbites/journalsim/internal/apperrors"
	"github.com/freshbites/journalsim/internal/core/domain"
	portsrepo "github.com/freshbites/journalsim/internal/core/ports/repositories"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
	"github.com/freshbites/journalsim/internal/dto"
	"github.com/freshbites/journalsim/internal/middleware"
)

// DefaultMaxAttempts is the number of submissions before the solution is
// revealed and the transaction force-completes.
const DefaultMaxAttempts = 3

// sessionService orchestrates a learner session. Every transition loads the
// stored progress, builds a fresh snapshot and persists it wholesale, so the
// repository always holds a consistent state. A single mutex serializes the
// HTTP-driven actions with the timer goroutine callbacks; the engine itself
// supports only one learner per session.
type sessionService struct {
	repo      portsrepo.SessionRepository
	generator portssvc.GeneratorSvc
	validator portssvc.ValidationSvc
	scorer    portssvc.ScoringSvc
	timers    portssvc.TimerSvc

	pools       []domain.TransactionPool
	config      domain.SimulationConfig
	maxAttempts int
	now         func() time.Time

	mu sync.Mutex
}

// SessionOption configures optional session service dependencies.
type SessionOption func(*sessionService)

// WithSessionClock overrides the wall clock, for tests.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *sessionService) {
		s.now = now
	}
}

// WithMaxAttempts overrides the attempt budget per transaction.
func WithMaxAttempts(max int) SessionOption {
	return func(s *sessionService) {
		s.maxAttempts = max
	}
}

// NewSessionService creates a new SessionSvcFacade.
func NewSessionService(
	repo portsrepo.SessionRepository,
	generator portssvc.GeneratorSvc,
	validator portssvc.ValidationSvc,
	scorer portssvc.ScoringSvc,
	timers portssvc.TimerSvc,
	pools []domain.TransactionPool,
	config domain.SimulationConfig,
	opts ...SessionOption,
) portssvc.SessionSvcFacade {
	s := &sessionService{
		repo:        repo,
		generator:   generator,
		validator:   validator,
		scorer:      scorer,
		timers:      timers,
		pools:       pools,
		config:      config,
		maxAttempts: DefaultMaxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure sessionService implements the portssvc.SessionSvcFacade interface
var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) InitializeSession(ctx context.Context, userID, seed string) (*domain.Simulation, *domain.UserProgress, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if seed == "" {
		seed = fmt.Sprintf("%s-%d", userID, s.now().UnixMilli())
	}

	sim, err := s.generator.GenerateSimulation(ctx, seed, userID, s.pools, s.config)
	if err != nil {
		return nil, nil, err
	}

	progress := s.buildInitialProgress(sim)
	if err := s.repo.SaveSimulation(ctx, *sim); err != nil {
		return nil, nil, fmt.Errorf("save simulation: %w", err)
	}
	if err := s.repo.SaveProgress(ctx, progress); err != nil {
		return nil, nil, fmt.Errorf("save progress: %w", err)
	}

	logger.Info("Session initialized",
		slog.String("simulation_id", sim.SimulationID),
		slog.String("user_id", userID),
		slog.String("seed", seed),
	)
	return sim, &progress, nil
}

// buildInitialProgress creates the mutable session state: transaction 1
// active, everything after it locked.
func (s *sessionService) buildInitialProgress(sim *domain.Simulation) domain.UserProgress {
	perTxn := make(map[string]domain.TransactionProgress, len(sim.Transactions))
	for _, txn := range sim.Transactions {
		status := domain.TransactionLocked
		if txn.TransactionNumber == 1 {
			status = domain.TransactionActive
		}
		limit := sim.Config.TimeLimits[txn.TransactionNumber]
		perTxn[txn.TransactionID] = domain.TransactionProgress{
			TransactionID: txn.TransactionID,
			Status:        status,
			HintsViewed:   []domain.HintLevel{},
			TimeLimit:     limit,
			TimeRemaining: limit,
		}
	}
	return domain.UserProgress{
		SimulationID:        sim.SimulationID,
		UserID:              sim.UserID,
		Seed:                sim.Seed,
		Status:              domain.SessionNotStarted,
		TransactionProgress: perTxn,
		LastSavedAt:         s.now(),
	}
}

func (s *sessionService) GetSession(ctx context.Context, simulationID string) (*domain.Simulation, *domain.UserProgress, error) {
	sim, err := s.repo.FindSimulationByID(ctx, simulationID)
	if err != nil {
		return nil, nil, err
	}
	progress, err := s.repo.FindProgressBySimulationID(ctx, simulationID)
	if err != nil {
		return nil, nil, err
	}
	return sim, progress, nil
}

func (s *sessionService) StartTransaction(ctx context.Context, simulationID, transactionID string) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sim, progress, err := s.GetSession(ctx, simulationID)
	if err != nil {
		return nil, err
	}
	p, ok := progress.TransactionProgress[transactionID]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
	}
	switch p.Status {
	case domain.TransactionLocked:
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrLocked, transactionID)
	case domain.TransactionCompleted:
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrCompleted, transactionID)
	}

	p.Status = domain.TransactionActive
	p.IsPaused = false
	p.PausedAt = nil

	next := *progress
	next.Status = domain.SessionInProgress
	if next.StartedAt == nil {
		startedAt := s.now()
		next.StartedAt = &startedAt
	}
	next.TransactionProgress = progress.CloneProgressMap()
	next.TransactionProgress[transactionID] = p
	if err := s.saveProgress(ctx, &next); err != nil {
		return nil, err
	}

	s.startCountdown(sim.SimulationID, p)
	return &next, nil
}

// startCountdown schedules the tick/expire callbacks for a timed
// transaction. Starting again for the same ID replaces the previous
// countdown.
func (s *sessionService) startCountdown(simulationID string, p domain.TransactionProgress) {
	if p.TimeLimit == 0 || p.TimeExpired {
		return
	}
	transactionID := p.TransactionID
	s.timers.Start(transactionID, p.TimeRemaining,
		func(remaining int) { s.handleTimerTick(simulationID, transactionID, remaining) },
		func() { s.handleTimerExpire(simulationID, transactionID) },
	)
}

// handleTimerTick persists the new remaining time. Runs on the timer
// goroutine with no request context.
func (s *sessionService) handleTimerTick(simulationID, transactionID string, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	progress, err := s.repo.FindProgressBySimulationID(ctx, simulationID)
	if err != nil {
		slog.Default().Error("Timer tick: failed to load progress", slog.String("error", err.Error()))
		return
	}
	p, ok := progress.TransactionProgress[transactionID]
	if !ok || p.Status != domain.TransactionActive || p.IsPaused {
		return // Stale tick from a replaced or finished countdown
	}

	p.TimeRemaining = remaining
	next := *progress
	next.TransactionProgress = progress.CloneProgressMap()
	next.TransactionProgress[transactionID] = p
	if err := s.saveProgress(ctx, &next); err != nil {
		slog.Default().Error("Timer tick: failed to save progress", slog.String("error", err.Error()))
	}
}

// handleTimerExpire force-completes the transaction: whatever the learner
// had entered is recorded, the outcome is incorrect with zero stars, and the
// next transaction unlocks exactly as a normal completion would.
func (s *sessionService) handleTimerExpire(simulationID, transactionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	sim, progress, err := s.GetSession(ctx, simulationID)
	if err != nil {
		slog.Default().Error("Timer expiry: failed to load session", slog.String("error", err.Error()))
		return
	}
	p, ok := progress.TransactionProgress[transactionID]
	if !ok || p.Status == domain.TransactionCompleted {
		return
	}

	p.TimeExpired = true
	p.TimeRemaining = 0

	next := *progress
	next.TransactionProgress = progress.CloneProgressMap()
	next.TransactionProgress[transactionID] = p
	s.completeTransaction(sim, &next, transactionID, false, 0)

	if err := s.saveProgress(ctx, &next); err != nil {
		slog.Default().Error("Timer expiry: failed to save progress", slog.String("error", err.Error()))
		return
	}
	slog.Default().Info("Transaction expired",
		slog.String("simulation_id", simulationID),
		slog.String("transaction_id", transactionID),
	)
}

func (s *sessionService) SubmitAnswer(ctx context.Context, simulationID, transactionID string, entries []domain.JournalEntry) (*dto.SubmissionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)
	sim, progress, err := s.GetSession(ctx, simulationID)
	if err != nil {
		return nil, err
	}
	txn, err := findTransaction(sim, transactionID)
	if err != nil {
		return nil, err
	}
	p, ok := progress.TransactionProgress[transactionID]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
	}
	switch p.Status {
	case domain.TransactionLocked:
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrLocked, transactionID)
	case domain.TransactionCompleted:
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrCompleted, transactionID)
	}

	result := s.validator.Validate(entries, txn.CorrectAnswer, txn)

	p.Attempts++
	p.CurrentEntry = entries
	isCorrect := result.IsValid
	p.IsCorrect = &isCorrect

	next := *progress
	next.TransactionProgress = progress.CloneProgressMap()
	next.TransactionProgress[transactionID] = p

	outcome := &dto.SubmissionOutcome{
		Result:            result,
		AttemptsRemaining: s.maxAttempts - p.Attempts,
	}
	if outcome.AttemptsRemaining < 0 {
		outcome.AttemptsRemaining = 0
	}

	if result.IsValid {
		stars := s.scorer.CalculateStars(p.Attempts, p.HintsUsed(), false, true)
		s.timers.Stop(transactionID)
		s.completeTransaction(sim, &next, transactionID, true, stars)

		outcome.StarsEarned = stars
		outcome.Feedback = txn.FeedbackCorrect
		outcome.TransactionCompleted = true
	} else {
		outcome.Feedback = txn.FeedbackIncorrect
		if p.Attempts >= s.maxAttempts {
			// Attempt budget exhausted: reveal the solution and move on.
			// This policy lives here, not in the validator.
			s.timers.Stop(transactionID)
			s.completeTransaction(sim, &next, transactionID, false, 0)
			outcome.ShowSolution = true
			outcome.Solution = txn.CorrectAnswer
			outcome.TransactionCompleted = true
		}
	}
	outcome.SessionCompleted = next.Status == domain.SessionCompleted

	if err := s.saveProgress(ctx, &next); err != nil {
		return nil, err
	}
	outcome.Progress = next

	logger.Info("Answer submitted",
		slog.String("transaction_id", transactionID),
		slog.Bool("correct", result.IsValid),
		slog.Int("attempts", p.Attempts),
	)
	return outcome, nil
}

// completeTransaction marks a transaction done, applies its stars and
// unlocks the immediately following transaction. When the last transaction
// completes, the session itself completes.
func (s *sessionService) completeTransaction(sim *domain.Simulation, progress *domain.UserProgress, transactionID string, isCorrect bool, stars float64) {
	p := progress.TransactionProgress[transactionID]
	completedAt := s.now()
	p.Status = domain.TransactionCompleted
	p.CompletedAt = &completedAt
	p.IsCorrect = &isCorrect
	p.StarsEarned = stars
	progress.TransactionProgress[transactionID] = p

	progress.TotalScore += stars
	progress.Stars = s.scorer.RoundForDisplay(progress.TotalScore)

	txn, err := findTransaction(sim, transactionID)
	if err != nil {
		return
	}
	nextIndex := txn.TransactionNumber // 1-based number == 0-based index of the next transaction
	if nextIndex < len(sim.Transactions) {
		nextTxn := sim.Transactions[nextIndex]
		np := progress.TransactionProgress[nextTxn.TransactionID]
		np.Status = domain.TransactionActive
		progress.TransactionProgress[nextTxn.TransactionID] = np
		progress.CurrentTransactionIndex = nextIndex
	} else {
		progress.Status = domain.SessionCompleted
		progress.CompletedAt = &completedAt
	}
}

func (s *sessionService) UseHint(ctx context.Context, simulationID, transactionID string, level domain.HintLevel) (*domain.Hint, *domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sim, progress, err := s.GetSession(ctx, simulationID)
	if err != nil {
		return nil, nil, err
	}
	txn, err := findTransaction(sim, transactionID)
	if err != nil {
		return nil, nil, err
	}
	p, ok := progress.TransactionProgress[transactionID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
	}
	if p.Status != domain.TransactionActive {
		return nil, nil, fmt.Errorf("%w: transaction %q is not active", apperrors.ErrLocked, transactionID)
	}

	var hint *domain.Hint
	for i := range txn.Hints {
		if txn.Hints[i].Level == level {
			hint = &txn.Hints[i]
			break
		}
	}
	if hint == nil {
		return nil, nil, fmt.Errorf("%w: hint level %d", apperrors.ErrNotFound, level)
	}

	next := *progress
	next.TransactionProgress = progress.CloneProgressMap()
	if !p.HasViewedHint(level) {
		viewed := make([]domain.HintLevel, len(p.HintsViewed), len(p.HintsViewed)+1)
		copy(viewed, p.HintsViewed)
		p.HintsViewed = append(viewed, level)
		next.TransactionProgress[transactionID] = p
	}
	if err := s.saveProgress(ctx, &next); err != nil {
		return nil, nil, err
	}
	return hint, &next, nil
}

func (s *sessionService) PauseTransaction(ctx context.Context, simulationID, transactionID string) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, progress, err := s.GetSession(ctx, simulationID)
	if err != nil {
		return nil, err
	}
	p, ok := progress.TransactionProgress[transactionID]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
	}
	if p.Status != domain.TransactionActive || p.TimeLimit == 0 || p.IsPaused {
		return progress, nil
	}

	s.timers.Stop(transactionID)
	pausedAt := s.now()
	p.IsPaused = true
	p.PausedAt = &pausedAt

	next := *progress
	next.TransactionProgress = progress.CloneProgressMap()
	next.TransactionProgress[transactionID] = p
	if err := s.saveProgress(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *sessionService) ResumeTransaction(ctx context.Context, simulationID, transactionID string) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sim, progress, err := s.GetSession(ctx, simulationID)
	if err != nil {
		return nil, err
	}
	p, ok := progress.TransactionProgress[transactionID]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
	}
	if !p.IsPaused {
		return progress, nil
	}

	p.IsPaused = false
	p.PausedAt = nil

	next := *progress
	next.TransactionProgress = progress.CloneProgressMap()
	next.TransactionProgress[transactionID] = p
	if err := s.saveProgress(ctx, &next); err != nil {
		return nil, err
	}

	// The countdown restarts from the stored remaining time.
	s.startCountdown(sim.SimulationID, p)
	return &next, nil
}

func (s *sessionService) GetSummary(ctx context.Context, simulationID string) (*dto.SessionSummary, error) {
	progress, err := s.repo.FindProgressBySimulationID(ctx, simulationID)
	if err != nil {
		return nil, err
	}
	total := s.scorer.TotalStars(progress.TransactionProgress)
	return &dto.SessionSummary{
		Stars:       s.scorer.RoundForDisplay(total),
		TotalScore:  total,
		Performance: s.scorer.GetPerformanceLevel(total),
		Statistics:  s.scorer.Statistics(progress.TransactionProgress),
	}, nil
}

// ResetSession stops every outstanding countdown before discarding state, so
// a stale tick can never mutate a future session reusing the same ids.
func (s *sessionService) ResetSession(ctx context.Context, simulationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timers.StopAll()
	return s.repo.DeleteSession(ctx, simulationID)
}

func (s *sessionService) saveProgress(ctx context.Context, progress *domain.UserProgress) error {
	progress.LastSavedAt = s.now()
	if err := s.repo.SaveProgress(ctx, *progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func findTransaction(sim *domain.Simulation, transactionID string) (*domain.GeneratedTransaction, error) {
	for i := range sim.Transactions {
		if sim.Transactions[i].TransactionID == transactionID {
			return &sim.Transactions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
}
