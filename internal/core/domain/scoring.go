package domain

// PerformanceLevel is the tier a cumulative star total maps to.
type PerformanceLevel string

const (
	PerformanceExcellent        PerformanceLevel = "EXCELLENT"
	PerformanceGood             PerformanceLevel = "GOOD"
	PerformancePass             PerformanceLevel = "PASS"
	PerformanceNeedsImprovement PerformanceLevel = "NEEDS_IMPROVEMENT"
)

// PerformanceResult pairs a tier with its fixed learner-facing message.
type PerformanceResult struct {
	Level   PerformanceLevel `json:"level"`
	Message string           `json:"message"`
}

// SimulationStatistics summarizes a finished session for the end screen.
// Transactions completed by timer expiry count as incorrect and are excluded
// from the first-try statistic.
type SimulationStatistics struct {
	TotalTransactions int `json:"totalTransactions"`
	CorrectCount      int `json:"correctCount"`
	FirstTryCorrect   int `json:"firstTryCorrect"`
	HintsUsed         int `json:"hintsUsed"`
}
