package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/freshbites/journalsim/internal/apperrors"
	"github.com/freshbites/journalsim/internal/core/domain"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
	"github.com/freshbites/journalsim/internal/core/services"
	"github.com/freshbites/journalsim/internal/dto"
)

// memSessionRepo is an in-memory session store. The orchestrator's
// load-modify-save cycle needs real state, which a call-expectation mock
// cannot provide.
type memSessionRepo struct {
	mu    sync.Mutex
	sims  map[string]domain.Simulation
	progs map[string]domain.UserProgress
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{
		sims:  make(map[string]domain.Simulation),
		progs: make(map[string]domain.UserProgress),
	}
}

func (r *memSessionRepo) SaveSimulation(_ context.Context, simulation domain.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sims[simulation.SimulationID] = simulation
	return nil
}

func (r *memSessionRepo) FindSimulationByID(_ context.Context, simulationID string) (*domain.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sim, ok := r.sims[simulationID]
	if !ok {
		return nil, fmt.Errorf("%w: simulation %q", apperrors.ErrNotFound, simulationID)
	}
	return &sim, nil
}

func (r *memSessionRepo) SaveProgress(_ context.Context, progress domain.UserProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progs[progress.SimulationID] = progress
	return nil
}

func (r *memSessionRepo) FindProgressBySimulationID(_ context.Context, simulationID string) (*domain.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	progress, ok := r.progs[simulationID]
	if !ok {
		return nil, fmt.Errorf("%w: progress for simulation %q", apperrors.ErrNotFound, simulationID)
	}
	return &progress, nil
}

func (r *memSessionRepo) DeleteSession(_ context.Context, simulationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sims, simulationID)
	delete(r.progs, simulationID)
	return nil
}

// --- Test Suite ---

type SessionServiceTestSuite struct {
	suite.Suite
	repo    *memSessionRepo
	timers  *services.TimerManager
	service portssvc.SessionSvcFacade
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.repo = newMemSessionRepo()
	s.timers = services.NewTimerManagerWithInterval(2 * time.Millisecond)
	s.service = s.newService(testConfig())
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.timers.StopAll()
}

func (s *SessionServiceTestSuite) newService(config domain.SimulationConfig) portssvc.SessionSvcFacade {
	return services.NewSessionService(
		s.repo,
		newTestGenerator(),
		services.NewValidationService(),
		newTestScorer(),
		s.timers,
		testPools(),
		config,
		services.WithMaxAttempts(3),
	)
}

// initSession starts a session and returns the simulation, its progress and
// the first transaction.
func (s *SessionServiceTestSuite) initSession() (*domain.Simulation, *domain.UserProgress, domain.GeneratedTransaction) {
	sim, progress, err := s.service.InitializeSession(context.Background(), "user-1", "sess-seed")
	s.Require().NoError(err)
	return sim, progress, sim.Transactions[0]
}

func (s *SessionServiceTestSuite) wrongAnswer(txn domain.GeneratedTransaction) []domain.JournalEntry {
	wrong := make([]domain.JournalEntry, len(txn.CorrectAnswer))
	copy(wrong, txn.CorrectAnswer)
	// Swap the first line's account for an unused one.
	wrong[0].Account = domain.Account{AccountID: "loonkosten", Name: "Loonkosten"}
	return wrong
}

func (s *SessionServiceTestSuite) TestInitializeSession() {
	sim, progress, _ := s.initSession()

	s.Len(sim.Transactions, 3)
	s.Equal(domain.SessionNotStarted, progress.Status)
	s.Equal(0, progress.CurrentTransactionIndex)

	first := progress.TransactionProgress[sim.Transactions[0].TransactionID]
	s.Equal(domain.TransactionActive, first.Status)
	s.Equal(180, first.TimeLimit)
	s.Equal(180, first.TimeRemaining)

	for _, txn := range sim.Transactions[1:] {
		s.Equal(domain.TransactionLocked, progress.TransactionProgress[txn.TransactionID].Status)
	}
}

func (s *SessionServiceTestSuite) TestInitializeSession_DerivesSeedWhenEmpty() {
	sim, _, err := s.service.InitializeSession(context.Background(), "user-1", "")
	s.Require().NoError(err)
	s.NotEmpty(sim.Seed)
	s.Contains(sim.Seed, "user-1-")
}

func (s *SessionServiceTestSuite) TestSubmitAnswer_FirstTryCorrect() {
	sim, _, txn := s.initSession()

	outcome, err := s.service.SubmitAnswer(context.Background(), sim.SimulationID, txn.TransactionID, txn.CorrectAnswer)
	s.Require().NoError(err)

	s.True(outcome.Result.IsValid)
	s.InDelta(1.0, outcome.StarsEarned, 1e-9)
	s.True(outcome.TransactionCompleted)
	s.False(outcome.SessionCompleted)
	s.Equal(txn.FeedbackCorrect, outcome.Feedback)

	// The next transaction unlocked and the index advanced.
	next := outcome.Progress.TransactionProgress[sim.Transactions[1].TransactionID]
	s.Equal(domain.TransactionActive, next.Status)
	s.Equal(1, outcome.Progress.CurrentTransactionIndex)
	s.InDelta(1.0, outcome.Progress.TotalScore, 1e-9)
}

func (s *SessionServiceTestSuite) TestSubmitAnswer_SecondTryHalfStar() {
	sim, _, txn := s.initSession()
	ctx := context.Background()

	outcome, err := s.service.SubmitAnswer(ctx, sim.SimulationID, txn.TransactionID, s.wrongAnswer(txn))
	s.Require().NoError(err)
	s.False(outcome.Result.IsValid)
	s.Equal(2, outcome.AttemptsRemaining)
	s.False(outcome.TransactionCompleted)
	s.Equal(txn.FeedbackIncorrect, outcome.Feedback)

	outcome, err = s.service.SubmitAnswer(ctx, sim.SimulationID, txn.TransactionID, txn.CorrectAnswer)
	s.Require().NoError(err)
	s.True(outcome.Result.IsValid)
	s.InDelta(0.5, outcome.StarsEarned, 1e-9)
}

func (s *SessionServiceTestSuite) TestSubmitAnswer_AttemptExhaustionRevealsSolution() {
	sim, _, txn := s.initSession()
	ctx := context.Background()

	var outcome *dto.SubmissionOutcome
	for i := 0; i < 3; i++ {
		out, err := s.service.SubmitAnswer(ctx, sim.SimulationID, txn.TransactionID, s.wrongAnswer(txn))
		s.Require().NoError(err)
		outcome = out
	}

	s.True(outcome.ShowSolution)
	s.Equal(txn.CorrectAnswer, outcome.Solution)
	s.True(outcome.TransactionCompleted)
	s.Equal(0, outcome.AttemptsRemaining)
	s.InDelta(0.0, outcome.StarsEarned, 1e-9)

	// Completed incorrect, and the sequence still advances.
	p := outcome.Progress.TransactionProgress[txn.TransactionID]
	s.Equal(domain.TransactionCompleted, p.Status)
	s.Require().NotNil(p.IsCorrect)
	s.False(*p.IsCorrect)
	s.Equal(domain.TransactionActive, outcome.Progress.TransactionProgress[sim.Transactions[1].TransactionID].Status)

	// Further submissions are rejected.
	_, err := s.service.SubmitAnswer(ctx, sim.SimulationID, txn.TransactionID, txn.CorrectAnswer)
	s.ErrorIs(err, apperrors.ErrCompleted)
}

func (s *SessionServiceTestSuite) TestSubmitAnswer_LockedTransaction() {
	sim, _, _ := s.initSession()
	locked := sim.Transactions[1]

	_, err := s.service.SubmitAnswer(context.Background(), sim.SimulationID, locked.TransactionID, locked.CorrectAnswer)
	s.ErrorIs(err, apperrors.ErrLocked)
}

func (s *SessionServiceTestSuite) TestUseHint() {
	sim, _, txn := s.initSession()
	ctx := context.Background()

	hint, progress, err := s.service.UseHint(ctx, sim.SimulationID, txn.TransactionID, domain.HintNudge)
	s.Require().NoError(err)
	s.Require().NotNil(hint)
	s.Equal(domain.HintNudge, hint.Level)
	s.Equal([]domain.HintLevel{domain.HintNudge}, progress.TransactionProgress[txn.TransactionID].HintsViewed)

	// Revealing the same level again does not double the penalty.
	_, progress, err = s.service.UseHint(ctx, sim.SimulationID, txn.TransactionID, domain.HintNudge)
	s.Require().NoError(err)
	s.Len(progress.TransactionProgress[txn.TransactionID].HintsViewed, 1)

	// A first-try correct answer after one hint earns 0.75.
	outcome, err := s.service.SubmitAnswer(ctx, sim.SimulationID, txn.TransactionID, txn.CorrectAnswer)
	s.Require().NoError(err)
	s.InDelta(0.75, outcome.StarsEarned, 1e-9)
}

func (s *SessionServiceTestSuite) TestUseHint_UnknownLevel() {
	sim, _, txn := s.initSession()

	_, _, err := s.service.UseHint(context.Background(), sim.SimulationID, txn.TransactionID, domain.HintLevel(9))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SessionServiceTestSuite) TestTimerExpiry() {
	// Two-second budget on transaction 1, ticking every 2ms.
	s.service = s.newService(domain.SimulationConfig{
		TimeLimits:            map[int]int{1: 2},
		WarningThresholdSecs:  30,
		CriticalThresholdSecs: 10,
	})
	sim, _, txn := s.initSession()
	ctx := context.Background()

	_, err := s.service.StartTransaction(ctx, sim.SimulationID, txn.TransactionID)
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		progress, err := s.repo.FindProgressBySimulationID(ctx, sim.SimulationID)
		if err != nil {
			return false
		}
		return progress.TransactionProgress[txn.TransactionID].TimeExpired
	}, time.Second, time.Millisecond)

	progress, err := s.repo.FindProgressBySimulationID(ctx, sim.SimulationID)
	s.Require().NoError(err)

	p := progress.TransactionProgress[txn.TransactionID]
	s.Equal(domain.TransactionCompleted, p.Status)
	s.Equal(0, p.TimeRemaining)
	s.Require().NotNil(p.IsCorrect)
	s.False(*p.IsCorrect)
	s.InDelta(0.0, p.StarsEarned, 1e-9)

	// Expiry advances the sequence like any other completion.
	s.Equal(domain.TransactionActive, progress.TransactionProgress[sim.Transactions[1].TransactionID].Status)
}

func (s *SessionServiceTestSuite) TestPauseAndResume() {
	sim, _, txn := s.initSession()
	ctx := context.Background()

	_, err := s.service.StartTransaction(ctx, sim.SimulationID, txn.TransactionID)
	s.Require().NoError(err)

	progress, err := s.service.PauseTransaction(ctx, sim.SimulationID, txn.TransactionID)
	s.Require().NoError(err)
	p := progress.TransactionProgress[txn.TransactionID]
	s.True(p.IsPaused)
	s.NotNil(p.PausedAt)

	progress, err = s.service.ResumeTransaction(ctx, sim.SimulationID, txn.TransactionID)
	s.Require().NoError(err)
	p = progress.TransactionProgress[txn.TransactionID]
	s.False(p.IsPaused)
	s.Nil(p.PausedAt)
}

func (s *SessionServiceTestSuite) TestGetSummary() {
	sim, _, txn := s.initSession()
	ctx := context.Background()

	_, err := s.service.SubmitAnswer(ctx, sim.SimulationID, txn.TransactionID, txn.CorrectAnswer)
	s.Require().NoError(err)

	summary, err := s.service.GetSummary(ctx, sim.SimulationID)
	s.Require().NoError(err)
	s.InDelta(1.0, summary.TotalScore, 1e-9)
	s.InDelta(1.0, summary.Stars, 1e-9)
	s.Equal(3, summary.Statistics.TotalTransactions)
	s.Equal(1, summary.Statistics.CorrectCount)
}

func (s *SessionServiceTestSuite) TestResetSession() {
	sim, _, txn := s.initSession()
	ctx := context.Background()

	_, err := s.service.StartTransaction(ctx, sim.SimulationID, txn.TransactionID)
	s.Require().NoError(err)

	s.Require().NoError(s.service.ResetSession(ctx, sim.SimulationID))

	_, _, err = s.service.GetSession(ctx, sim.SimulationID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
