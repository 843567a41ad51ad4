package services

import (
	"github.com/freshbites/journalsim/internal/core/domain"
	portsrepo "github.com/freshbites/journalsim/internal/core/ports/repositories"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
	"github.com/freshbites/journalsim/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The transaction pools and the receipt renderer
// come from the caller so this package never depends on the content library.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	pools []domain.TransactionPool,
	receipts portssvc.ReceiptRendererSvc,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	simConfig := domain.SimulationConfig{
		TimeLimits:            cfg.TimeLimits,
		WarningThresholdSecs:  cfg.WarningThresholdSecs,
		CriticalThresholdSecs: cfg.CriticalThresholdSecs,
	}

	container.Receipts = receipts
	container.Generator = NewGeneratorService(WithReceiptRenderer(receipts))
	container.Validation = NewValidationService()
	container.Scoring = NewScoringService(cfg.HintPenalty, PerformanceThresholds{
		Excellent: cfg.ExcellentThreshold,
		Good:      cfg.GoodThreshold,
		Pass:      cfg.PassThreshold,
	})

	timers := NewTimerManager()
	container.Timer = timers

	container.Session = NewSessionService(
		repos.Session,
		container.Generator,
		container.Validation,
		container.Scoring,
		timers,
		pools,
		simConfig,
		WithMaxAttempts(cfg.MaxAttempts),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.GeneratorSvc     = (*generatorService)(nil)
	_ portssvc.ValidationSvc    = (*validationService)(nil)
	_ portssvc.ScoringSvc       = (*scoringService)(nil)
	_ portssvc.SessionSvcFacade = (*sessionService)(nil)
)
