package services

// ServiceContainer holds all service implementations for dependency
// injection into the handlers.
type ServiceContainer struct {
	Generator  GeneratorSvc
	Validation ValidationSvc
	Scoring    ScoringSvc
	Timer      TimerSvc
	Receipts   ReceiptRendererSvc
	Session    SessionSvcFacade
}
