package services

import "github.com/freshbites/journalsim/internal/core/domain"

// ScoringSvc converts attempt/hint/timer outcomes into stars and maps
// cumulative stars to a performance tier.
type ScoringSvc interface {
	// CalculateStars returns the stars for one transaction: zero unless
	// correct, based on the attempt number at first success, minus the hint
	// penalty, floored at zero.
	CalculateStars(attempts, hintsUsed int, timeExpired, isCorrect bool) float64

	// TotalStars sums the stars earned across all transactions.
	TotalStars(progress map[string]domain.TransactionProgress) float64

	// RoundForDisplay rounds a star total to the nearest 0.5.
	RoundForDisplay(total float64) float64

	// GetPerformanceLevel maps a cumulative star total to its tier.
	GetPerformanceLevel(totalStars float64) domain.PerformanceResult

	// Statistics summarizes a progress map for the end screen.
	Statistics(progress map[string]domain.TransactionProgress) domain.SimulationStatistics
}
