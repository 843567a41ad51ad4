package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freshbites/journalsim/internal/core/domain"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
	"github.com/freshbites/journalsim/internal/core/services"
)

func newTestScorer() portssvc.ScoringSvc {
	return services.NewScoringService(services.DefaultHintPenalty, services.DefaultPerformanceThresholds)
}

func TestCalculateStars(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name        string
		attempts    int
		hintsUsed   int
		timeExpired bool
		isCorrect   bool
		expected    float64
	}{
		{"first try full star", 1, 0, false, true, 1.0},
		{"second try half star", 2, 0, false, true, 0.5},
		{"third try nothing", 3, 0, false, true, 0},
		{"incorrect earns nothing", 1, 0, false, false, 0},
		{"one hint penalty", 1, 1, false, true, 0.75},
		{"three hints", 1, 3, false, true, 0.25},
		{"penalty floors at zero", 2, 3, false, true, 0},
		{"second try with hint", 2, 1, false, true, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.CalculateStars(tt.attempts, tt.hintsUsed, tt.timeExpired, tt.isCorrect)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestRoundForDisplay(t *testing.T) {
	s := newTestScorer()

	assert.InDelta(t, 3.5, s.RoundForDisplay(3.5), 1e-9)
	assert.InDelta(t, 3.5, s.RoundForDisplay(3.25), 1e-9)
	assert.InDelta(t, 3.0, s.RoundForDisplay(3.1), 1e-9)
	assert.InDelta(t, 4.0, s.RoundForDisplay(3.75), 1e-9)
	assert.InDelta(t, 0.0, s.RoundForDisplay(0), 1e-9)
}

func TestGetPerformanceLevel(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		stars    float64
		expected domain.PerformanceLevel
	}{
		{5.0, domain.PerformanceExcellent},
		{4.5, domain.PerformanceExcellent},
		{4.0, domain.PerformanceGood},
		{3.5, domain.PerformanceGood},
		{3.0, domain.PerformancePass},
		{2.5, domain.PerformancePass},
		{2.0, domain.PerformanceNeedsImprovement},
		{0, domain.PerformanceNeedsImprovement},
	}
	for _, tt := range tests {
		result := s.GetPerformanceLevel(tt.stars)
		assert.Equalf(t, tt.expected, result.Level, "stars %.1f", tt.stars)
		assert.NotEmpty(t, result.Message)
	}
}

func TestTotalStarsAndStatistics(t *testing.T) {
	s := newTestScorer()

	correct := true
	incorrect := false
	progress := map[string]domain.TransactionProgress{
		"tx1": {Attempts: 1, IsCorrect: &correct, StarsEarned: 1.0},
		"tx2": {Attempts: 2, IsCorrect: &correct, StarsEarned: 0.5, HintsViewed: []domain.HintLevel{domain.HintNudge}},
		"tx3": {Attempts: 3, IsCorrect: &incorrect, StarsEarned: 0},
		"tx4": {Attempts: 1, IsCorrect: &correct, StarsEarned: 0, TimeExpired: true},
		"tx5": {Attempts: 0}, // never attempted
	}

	assert.InDelta(t, 1.5, s.TotalStars(progress), 1e-9)

	stats := s.Statistics(progress)
	assert.Equal(t, 5, stats.TotalTransactions)
	assert.Equal(t, 2, stats.CorrectCount)   // expired one doesn't count
	assert.Equal(t, 1, stats.FirstTryCorrect)
	assert.Equal(t, 1, stats.HintsUsed)
}
