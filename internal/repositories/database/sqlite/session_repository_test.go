package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbites/journalsim/internal/apperrors"
	"github.com/freshbites/journalsim/internal/core/domain"
	"github.com/freshbites/journalsim/pkg/database"
)

func newTestRepository(t *testing.T) *SessionRepository {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewSessionRepository(ctx, db)
	require.NoError(t, err)
	return repo
}

func sampleSimulation(simulationID string) domain.Simulation {
	amount := decimal.NewFromInt(450)
	display := decimal.NewFromInt(480)
	return domain.Simulation{
		SimulationID: simulationID,
		Seed:         "seed-1",
		UserID:       "user-1",
		CreatedAt:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Config: domain.SimulationConfig{
			TimeLimits:            map[int]int{1: 180},
			WarningThresholdSecs:  30,
			CriticalThresholdSecs: 10,
		},
		Transactions: []domain.GeneratedTransaction{
			{
				TransactionID:     simulationID + "-tx1",
				TemplateID:        "a1_voorraad_contant",
				TransactionNumber: 1,
				TimeSlot:          "08:30",
				Message:           "Heb voor €480 ingekocht, bonnetje zit erbij!",
				GeneratedAmounts:  domain.GeneratedAmounts{Amount: amount},
				CorrectAnswer: []domain.JournalEntry{
					{Account: domain.Account{AccountID: "voorraad", Name: "Voorraad"}, Debit: &amount},
					{Account: domain.Account{AccountID: "kas", Name: "Kas"}, Credit: &amount},
				},
				HasAmountMismatch: true,
				ActualAmount:      amount,
				DisplayAmount:     &display,
				MismatchDetails: &domain.MismatchDetails{
					ChatAmount:    display,
					ReceiptAmount: amount,
					Difference:    display.Sub(amount),
				},
			},
		},
	}
}

func sampleProgress(simulationID string) domain.UserProgress {
	correct := true
	return domain.UserProgress{
		SimulationID: simulationID,
		UserID:       "user-1",
		Seed:         "seed-1",
		Status:       domain.SessionInProgress,
		TotalScore:   0.75,
		Stars:        1.0,
		TransactionProgress: map[string]domain.TransactionProgress{
			simulationID + "-tx1": {
				TransactionID: simulationID + "-tx1",
				Status:        domain.TransactionCompleted,
				Attempts:      1,
				HintsViewed:   []domain.HintLevel{domain.HintNudge},
				IsCorrect:     &correct,
				StarsEarned:   0.75,
				TimeLimit:     180,
				TimeRemaining: 95,
			},
		},
		LastSavedAt: time.Date(2025, 3, 14, 9, 45, 0, 0, time.UTC),
	}
}

func TestSimulationRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	stored := sampleSimulation("sim-1")
	require.NoError(t, repo.SaveSimulation(ctx, stored))

	loaded, err := repo.FindSimulationByID(ctx, "sim-1")
	require.NoError(t, err)

	assert.Equal(t, stored.SimulationID, loaded.SimulationID)
	assert.Equal(t, stored.Seed, loaded.Seed)
	assert.Equal(t, stored.Config, loaded.Config)
	require.Len(t, loaded.Transactions, 1)

	// Decimal amounts survive the JSON document intact.
	txn := loaded.Transactions[0]
	assert.True(t, txn.ActualAmount.Equal(decimal.NewFromInt(450)))
	require.NotNil(t, txn.DisplayAmount)
	assert.True(t, txn.DisplayAmount.Equal(decimal.NewFromInt(480)))
	require.NotNil(t, txn.MismatchDetails)
	assert.True(t, txn.MismatchDetails.Difference.Equal(decimal.NewFromInt(30)))
	assert.True(t, txn.CorrectAnswer[0].DebitOrZero().Equal(txn.ActualAmount))
}

func TestSaveSimulation_Overwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := sampleSimulation("sim-1")
	require.NoError(t, repo.SaveSimulation(ctx, first))

	second := first
	second.Transactions = nil
	require.NoError(t, repo.SaveSimulation(ctx, second))

	loaded, err := repo.FindSimulationByID(ctx, "sim-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Transactions)
}

func TestProgressRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSimulation(ctx, sampleSimulation("sim-1")))
	stored := sampleProgress("sim-1")
	require.NoError(t, repo.SaveProgress(ctx, stored))

	loaded, err := repo.FindProgressBySimulationID(ctx, "sim-1")
	require.NoError(t, err)

	assert.Equal(t, domain.SessionInProgress, loaded.Status)
	assert.InDelta(t, 0.75, loaded.TotalScore, 1e-9)

	p := loaded.TransactionProgress["sim-1-tx1"]
	assert.Equal(t, domain.TransactionCompleted, p.Status)
	assert.Equal(t, []domain.HintLevel{domain.HintNudge}, p.HintsViewed)
	require.NotNil(t, p.IsCorrect)
	assert.True(t, *p.IsCorrect)
	assert.Equal(t, 95, p.TimeRemaining)
}

func TestSaveProgress_ReplacesSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSimulation(ctx, sampleSimulation("sim-1")))

	progress := sampleProgress("sim-1")
	require.NoError(t, repo.SaveProgress(ctx, progress))

	progress.Status = domain.SessionCompleted
	progress.TotalScore = 1.75
	require.NoError(t, repo.SaveProgress(ctx, progress))

	loaded, err := repo.FindProgressBySimulationID(ctx, "sim-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, loaded.Status)
	assert.InDelta(t, 1.75, loaded.TotalScore, 1e-9)
}

func TestFind_NotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.FindSimulationByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindProgressBySimulationID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteSession(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSimulation(ctx, sampleSimulation("sim-1")))
	require.NoError(t, repo.SaveProgress(ctx, sampleProgress("sim-1")))

	require.NoError(t, repo.DeleteSession(ctx, "sim-1"))

	_, err := repo.FindSimulationByID(ctx, "sim-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindProgressBySimulationID(ctx, "sim-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting something unknown is not an error.
	assert.NoError(t, repo.DeleteSession(ctx, "never-existed"))
}
