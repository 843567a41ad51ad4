package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshbites/journalsim/internal/core/domain"
)

// GeneratorSvc expands template pools into a concrete simulation. The same
// seed always yields the same transaction list.
type GeneratorSvc interface {
	GenerateSimulation(ctx context.Context, seed, userID string, pools []domain.TransactionPool, config domain.SimulationConfig) (*domain.Simulation, error)
}

// ReceiptData carries the numeric values a document renderer embeds.
// Amount is always the actual (correct) amount, never the display amount.
type ReceiptData struct {
	Amount         decimal.Decimal
	Partial        *decimal.Decimal // Split payments: part paid immediately
	DocumentNumber string
	Date           time.Time
}

// ReceiptRendererSvc synthesizes attachment content for document-carrying
// templates. Rendering an unknown template ID yields empty content, not an
// error; the renderer owns the markup, the engine owns the numbers.
type ReceiptRendererSvc interface {
	Render(templateID string, data ReceiptData) (string, error)
}
