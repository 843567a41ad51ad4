package services

import (
	"math"

	"github.com/freshbites/journalsim/internal/core/domain"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
)

// PerformanceThresholds are the minimum cumulative star totals per tier.
type PerformanceThresholds struct {
	Excellent float64
	Good      float64
	Pass      float64
}

// DefaultPerformanceThresholds matches the product's grading scale.
var DefaultPerformanceThresholds = PerformanceThresholds{
	Excellent: 4.5,
	Good:      3.5,
	Pass:      2.5,
}

// DefaultHintPenalty is the star cost per revealed hint level.
const DefaultHintPenalty = 0.25

var performanceMessages = map[domain.PerformanceLevel]string{
	domain.PerformanceExcellent:        "Uitstekend werk! Je beheerst journaliseren prima.",
	domain.PerformanceGood:             "Goed gedaan! Je bent goed op weg.",
	domain.PerformancePass:             "Je hebt de basis onder de knie, blijf oefenen!",
	domain.PerformanceNeedsImprovement: "Blijf oefenen, je komt er wel!",
}

type scoringService struct {
	hintPenalty float64
	thresholds  PerformanceThresholds
}

// NewScoringService creates a new ScoringSvc.
func NewScoringService(hintPenalty float64, thresholds PerformanceThresholds) portssvc.ScoringSvc {
	return &scoringService{
		hintPenalty: hintPenalty,
		thresholds:  thresholds,
	}
}

// Ensure scoringService implements the portssvc.ScoringSvc interface
var _ portssvc.ScoringSvc = (*scoringService)(nil)

// CalculateStars maps attempt/hint outcomes to the stars for one
// transaction. The attempt number is the attempt at which the learner
// succeeded: 1 earns a full star, 2 half, 3 or later nothing. Each revealed
// hint level subtracts a fixed penalty; the result never goes negative.
func (s *scoringService) CalculateStars(attempts, hintsUsed int, timeExpired, isCorrect bool) float64 {
	if !isCorrect {
		return 0
	}

	var stars float64
	switch attempts {
	case 1:
		stars = 1.0
	case 2:
		stars = 0.5
	default:
		stars = 0
	}

	stars -= float64(hintsUsed) * s.hintPenalty
	if stars < 0 {
		stars = 0
	}
	return stars
}

func (s *scoringService) TotalStars(progress map[string]domain.TransactionProgress) float64 {
	total := 0.0
	for _, p := range progress {
		total += p.StarsEarned
	}
	return total
}

// RoundForDisplay rounds to the nearest half star; the exact total keeps
// accumulating unrounded.
func (s *scoringService) RoundForDisplay(total float64) float64 {
	return math.Round(total*2) / 2
}

func (s *scoringService) GetPerformanceLevel(totalStars float64) domain.PerformanceResult {
	var level domain.PerformanceLevel
	switch {
	case totalStars >= s.thresholds.Excellent:
		level = domain.PerformanceExcellent
	case totalStars >= s.thresholds.Good:
		level = domain.PerformanceGood
	case totalStars >= s.thresholds.Pass:
		level = domain.PerformancePass
	default:
		level = domain.PerformanceNeedsImprovement
	}
	return domain.PerformanceResult{
		Level:   level,
		Message: performanceMessages[level],
	}
}

// Statistics summarizes the per-transaction outcomes. Expired transactions
// count as incorrect and never as first-try successes.
func (s *scoringService) Statistics(progress map[string]domain.TransactionProgress) domain.SimulationStatistics {
	stats := domain.SimulationStatistics{TotalTransactions: len(progress)}
	for _, p := range progress {
		stats.HintsUsed += p.HintsUsed()
		if p.IsCorrect != nil && *p.IsCorrect && !p.TimeExpired {
			stats.CorrectCount++
			if p.Attempts == 1 {
				stats.FirstTryCorrect++
			}
		}
	}
	return stats
}
