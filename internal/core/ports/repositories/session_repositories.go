package repositories

import (
	"context"

	"github.com/freshbites/journalsim/internal/core/domain"
)

// SessionRepository persists the generated simulation (immutable) and the
// learner progress (mutable), keyed by simulation ID. Implementations store
// both as flat documents; no relational shape is required.
type SessionRepository interface {
	SaveSimulation(ctx context.Context, simulation domain.Simulation) error
	FindSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error)

	SaveProgress(ctx context.Context, progress domain.UserProgress) error
	FindProgressBySimulationID(ctx context.Context, simulationID string) (*domain.UserProgress, error)

	// DeleteSession removes both documents. Deleting an unknown session is not
	// an error.
	DeleteSession(ctx context.Context, simulationID string) error
}
