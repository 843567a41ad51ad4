// Package sqlite persists sessions as JSON documents in a local SQLite
// database: one row per simulation and one per progress snapshot, keyed by
// simulation ID. Saves replace the whole document, matching the engine's
// snapshot-replacement model.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freshbites/journalsim/internal/apperrors"
	"github.com/freshbites/journalsim/internal/core/domain"
	portsrepo "github.com/freshbites/journalsim/internal/core/ports/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS simulations (
	simulation_id TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	seed          TEXT NOT NULL,
	document      TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_progress (
	simulation_id TEXT PRIMARY KEY REFERENCES simulations(simulation_id) ON DELETE CASCADE,
	user_id       TEXT NOT NULL,
	document      TEXT NOT NULL,
	last_saved_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_simulations_user ON simulations(user_id);
`

// SessionRepository is the SQLite implementation of the session store.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates the repository and ensures the schema exists.
func NewSessionRepository(ctx context.Context, db *sql.DB) (*SessionRepository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create session schema: %w", err)
	}
	return &SessionRepository{db: db}, nil
}

// Ensure SessionRepository implements the port interface
var _ portsrepo.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSimulation(ctx context.Context, simulation domain.Simulation) error {
	document, err := json.Marshal(simulation)
	if err != nil {
		return fmt.Errorf("marshal simulation %s: %w", simulation.SimulationID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO simulations (simulation_id, user_id, seed, document, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(simulation_id) DO UPDATE SET document = excluded.document`,
		simulation.SimulationID, simulation.UserID, simulation.Seed, string(document),
		simulation.CreatedAt.UTC().Format("2006-01-02T15:04:05.999Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("save simulation %s: %w", simulation.SimulationID, err)
	}
	return nil
}

func (r *SessionRepository) FindSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error) {
	var document string
	err := r.db.QueryRowContext(ctx,
		`SELECT document FROM simulations WHERE simulation_id = ?`, simulationID,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: simulation %q", apperrors.ErrNotFound, simulationID)
	}
	if err != nil {
		return nil, fmt.Errorf("find simulation %s: %w", simulationID, err)
	}

	var simulation domain.Simulation
	if err := json.Unmarshal([]byte(document), &simulation); err != nil {
		return nil, fmt.Errorf("unmarshal simulation %s: %w", simulationID, err)
	}
	return &simulation, nil
}

func (r *SessionRepository) SaveProgress(ctx context.Context, progress domain.UserProgress) error {
	document, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress %s: %w", progress.SimulationID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_progress (simulation_id, user_id, document, last_saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(simulation_id) DO UPDATE SET
			document = excluded.document,
			last_saved_at = excluded.last_saved_at`,
		progress.SimulationID, progress.UserID, string(document),
		progress.LastSavedAt.UTC().Format("2006-01-02T15:04:05.999Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("save progress %s: %w", progress.SimulationID, err)
	}
	return nil
}

func (r *SessionRepository) FindProgressBySimulationID(ctx context.Context, simulationID string) (*domain.UserProgress, error) {
	var document string
	err := r.db.QueryRowContext(ctx,
		`SELECT document FROM user_progress WHERE simulation_id = ?`, simulationID,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: progress for simulation %q", apperrors.ErrNotFound, simulationID)
	}
	if err != nil {
		return nil, fmt.Errorf("find progress %s: %w", simulationID, err)
	}

	var progress domain.UserProgress
	if err := json.Unmarshal([]byte(document), &progress); err != nil {
		return nil, fmt.Errorf("unmarshal progress %s: %w", simulationID, err)
	}
	return &progress, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, simulationID string) error {
	// user_progress cascades from simulations, but delete explicitly so a
	// progress row without its simulation cannot survive either.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_progress WHERE simulation_id = ?`, simulationID); err != nil {
		return fmt.Errorf("delete progress %s: %w", simulationID, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM simulations WHERE simulation_id = ?`, simulationID); err != nil {
		return fmt.Errorf("delete simulation %s: %w", simulationID, err)
	}
	return nil
}
