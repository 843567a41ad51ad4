package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freshbites/journalsim/internal/apperrors"
	"github.com/freshbites/journalsim/internal/core/domain"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
	"github.com/freshbites/journalsim/internal/middleware"
)

// Mismatch magnitudes are €10..€50 in steps of €10, with a 50/50 sign.
const (
	mismatchMinDiff int64 = 10
	mismatchMaxDiff int64 = 50
	mismatchStep    int64 = 10
)

// generatorService expands template pools into a concrete simulation using
// seeded random streams. The whole simulation is produced in one call and is
// never partially visible.
type generatorService struct {
	receipts portssvc.ReceiptRendererSvc
	validate *validator.Validate
	now      func() time.Time
}

// GeneratorOption configures optional generator dependencies.
type GeneratorOption func(*generatorService)

// WithReceiptRenderer wires the document renderer used to synthesize HTML
// attachment content. Without it, attachments keep their filename but carry
// no content.
func WithReceiptRenderer(r portssvc.ReceiptRendererSvc) GeneratorOption {
	return func(s *generatorService) {
		s.receipts = r
	}
}

// WithGeneratorClock overrides the wall clock, for reproducible tests.
func WithGeneratorClock(now func() time.Time) GeneratorOption {
	return func(s *generatorService) {
		s.now = now
	}
}

// NewGeneratorService creates a new GeneratorSvc.
func NewGeneratorService(opts ...GeneratorOption) portssvc.GeneratorSvc {
	s := &generatorService{
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure generatorService implements the portssvc.GeneratorSvc interface
var _ portssvc.GeneratorSvc = (*generatorService)(nil)

// GenerateSimulation draws one template per pool and materializes each into
// a transaction, numbered 1..N in pool order. The same seed always produces
// the same transaction list.
func (s *generatorService) GenerateSimulation(ctx context.Context, seed, userID string, pools []domain.TransactionPool, config domain.SimulationConfig) (*domain.Simulation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(pools) == 0 {
		return nil, fmt.Errorf("%w: no transaction pools provided", apperrors.ErrConfiguration)
	}
	for _, pool := range pools {
		if len(pool.Templates) == 0 {
			return nil, fmt.Errorf("%w: pool %q has no templates", apperrors.ErrConfiguration, pool.PoolID)
		}
		if err := s.validate.Struct(pool); err != nil {
			return nil, fmt.Errorf("%w: pool %q: %v", apperrors.ErrConfiguration, pool.PoolID, err)
		}
	}

	rng := seededRand(seed)

	// Draw one template per pool from the main stream before any amounts are
	// generated, so the selection draws never shift the amount draws.
	selected := make([]domain.TransactionTemplate, len(pools))
	for i, pool := range pools {
		selected[i] = pool.Templates[rng.Intn(len(pool.Templates))]
	}

	mismatchIndices := selectMismatchIndices(seed, selected)

	createdAt := s.now()
	transactions := make([]domain.GeneratedTransaction, len(selected))
	for i, tpl := range selected {
		number := i + 1
		txn, err := s.generateTransaction(rng, seed, tpl, pools[i], number, mismatchIndices[i], createdAt)
		if err != nil {
			return nil, fmt.Errorf("transaction %d (template %q): %w", number, tpl.TemplateID, err)
		}
		transactions[i] = txn
	}

	sim := &domain.Simulation{
		SimulationID: uuid.NewString(),
		Seed:         seed,
		UserID:       userID,
		CreatedAt:    createdAt,
		Config:       config,
		Transactions: transactions,
	}

	logger.Info("Simulation generated",
		slog.String("simulation_id", sim.SimulationID),
		slog.Int("transactions", len(transactions)),
		slog.Int("mismatches", len(mismatchIndices)),
	)
	return sim, nil
}

// selectMismatchIndices decides which transactions get an intentional
// chat/document amount difference: 1 or 2 of the eligible templates (those
// flagged for mismatch and carrying an HTML document), drawn from dedicated
// sub-seeded streams so the assignment is reproducible on its own.
func selectMismatchIndices(seed string, templates []domain.TransactionTemplate) map[int]bool {
	var eligible []int
	for i, tpl := range templates {
		if tpl.AllowAmountMismatch && tpl.Attachment != nil && tpl.Attachment.Type == domain.AttachmentHTML {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return map[int]bool{}
	}

	countRng := seededRand(seed + "-mismatch-count")
	count := 2
	if countRng.Float64() < 0.5 {
		count = 1
	}

	selectRng := seededRand(seed + "-mismatch-select")
	shuffled := make([]int, len(eligible))
	copy(shuffled, eligible)
	selectRng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	selectedIndices := make(map[int]bool, count)
	for _, idx := range shuffled[:count] {
		selectedIndices[idx] = true
	}
	return selectedIndices
}

func (s *generatorService) generateTransaction(rng *rand.Rand, seed string, tpl domain.TransactionTemplate, pool domain.TransactionPool, number int, hasMismatch bool, date time.Time) (domain.GeneratedTransaction, error) {
	// The actual amount is what the document shows and what the correct
	// answer is computed from.
	actualInt, err := drawAmount(rng, tpl.AmountRange)
	if err != nil {
		return domain.GeneratedTransaction{}, err
	}
	actual := decimal.NewFromInt(actualInt)

	display := actual
	var details *domain.MismatchDetails
	if hasMismatch {
		diff := drawMismatchDifference(seed, number)
		display = actual.Add(diff)
		details = &domain.MismatchDetails{
			ChatAmount:    display,
			ReceiptAmount: actual,
			Difference:    diff,
		}
	}

	// Partial payments are a percentage of the actual amount, rounded to the
	// nearest multiple of 10.
	var partial *decimal.Decimal
	if tpl.PartialPaymentRange != nil {
		pct, err := drawAmount(rng, *tpl.PartialPaymentRange)
		if err != nil {
			return domain.GeneratedTransaction{}, err
		}
		p := roundToNearestTen(actual.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100)))
		partial = &p
	}

	// The narrative message uses the display amount; hints and the correct
	// answer always use the actual amount.
	messageVars := formulaVars(display, partial)
	answerVars := formulaVars(actual, partial)

	message, err := fillTemplate(tpl.MessageTemplate, messageVars)
	if err != nil {
		return domain.GeneratedTransaction{}, err
	}

	correctAnswer, err := buildCorrectAnswer(tpl.CorrectAnswer, answerVars)
	if err != nil {
		return domain.GeneratedTransaction{}, err
	}

	hints := make([]domain.Hint, len(tpl.Hints))
	for i, hint := range tpl.Hints {
		text, err := fillTemplate(hint.Text, answerVars)
		if err != nil {
			return domain.GeneratedTransaction{}, err
		}
		hints[i] = domain.Hint{Level: hint.Level, Text: text}
	}

	attachment, err := s.renderAttachment(tpl, seed, number, actual, partial, date)
	if err != nil {
		return domain.GeneratedTransaction{}, err
	}

	txn := domain.GeneratedTransaction{
		TransactionID:     fmt.Sprintf("%s-tx%d", seed, number),
		TemplateID:        tpl.TemplateID,
		TransactionNumber: number,
		TimeSlot:          pool.TimeSlot,
		Sender:            tpl.Sender,
		Message:           message,
		Attachment:        attachment,
		GeneratedAmounts:  domain.GeneratedAmounts{Amount: actual, Partial: partial},
		CorrectAnswer:     correctAnswer,
		Hints:             hints,
		FeedbackCorrect:   tpl.FeedbackCorrect,
		FeedbackIncorrect: tpl.FeedbackIncorrect,
		HasAmountMismatch: hasMismatch,
		ActualAmount:      actual,
		MismatchDetails:   details,
	}
	if hasMismatch {
		txn.DisplayAmount = &display
	}
	return txn, nil
}

// renderAttachment synthesizes the document content for HTML attachments.
// The document always embeds the actual amount.
func (s *generatorService) renderAttachment(tpl domain.TransactionTemplate, seed string, number int, actual decimal.Decimal, partial *decimal.Decimal, date time.Time) (*domain.Attachment, error) {
	if tpl.Attachment == nil {
		return nil, nil
	}
	attachment := *tpl.Attachment
	if attachment.Type == domain.AttachmentHTML && s.receipts != nil {
		content, err := s.receipts.Render(tpl.TemplateID, portssvc.ReceiptData{
			Amount:         actual,
			Partial:        partial,
			DocumentNumber: documentNumber(seed, number),
			Date:           date,
		})
		if err != nil {
			return nil, fmt.Errorf("render attachment: %w", err)
		}
		attachment.HTMLContent = content
	}
	return &attachment, nil
}

// buildCorrectAnswer evaluates the entry templates into concrete journal
// lines. Every entry template must carry exactly one formula side.
func buildCorrectAnswer(templates []domain.EntryTemplate, vars map[string]decimal.Decimal) ([]domain.JournalEntry, error) {
	entries := make([]domain.JournalEntry, len(templates))
	for i, et := range templates {
		if (et.DebitFormula == "") == (et.CreditFormula == "") {
			return nil, fmt.Errorf("%w: entry template for account %q must have exactly one of debit/credit formula", apperrors.ErrConfiguration, et.Account.AccountID)
		}
		entry := domain.JournalEntry{Account: et.Account}
		if et.DebitFormula != "" {
			value, err := EvaluateFormula(et.DebitFormula, vars)
			if err != nil {
				return nil, err
			}
			entry.Debit = &value
		} else {
			value, err := EvaluateFormula(et.CreditFormula, vars)
			if err != nil {
				return nil, err
			}
			entry.Credit = &value
		}
		entries[i] = entry
	}
	return entries, nil
}

// drawAmount draws min + k*step for a uniform k in [0, (max-min)/step]. A
// degenerate 0/0 range always yields 0 (untimed/amount-less transactions).
func drawAmount(rng *rand.Rand, r domain.AmountRange) (int64, error) {
	if r.Min == 0 && r.Max == 0 {
		return 0, nil
	}
	if r.Step <= 0 {
		return 0, fmt.Errorf("%w: amount range step must be positive (got %d)", apperrors.ErrConfiguration, r.Step)
	}
	if r.Max < r.Min {
		return 0, fmt.Errorf("%w: amount range max %d below min %d", apperrors.ErrConfiguration, r.Max, r.Min)
	}
	steps := (r.Max - r.Min) / r.Step
	return r.Min + rng.Int63n(steps+1)*r.Step, nil
}

// drawMismatchDifference derives the signed chat/document difference for one
// transaction from its own sub-seed, so it is stable regardless of how many
// other transactions exist.
func drawMismatchDifference(seed string, number int) decimal.Decimal {
	rng := seededRand(fmt.Sprintf("%s-tx%d-mismatch", seed, number))
	steps := (mismatchMaxDiff - mismatchMinDiff) / mismatchStep
	diff := mismatchMinDiff + rng.Int63n(steps+1)*mismatchStep
	if rng.Float64() >= 0.5 {
		diff = -diff
	}
	return decimal.NewFromInt(diff)
}

// documentNumber derives a stable 4-digit receipt/invoice number per
// transaction.
func documentNumber(seed string, number int) string {
	rng := seededRand(fmt.Sprintf("%s-tx%d-doc", seed, number))
	return fmt.Sprintf("%04d", rng.Intn(10000))
}

func roundToNearestTen(value decimal.Decimal) decimal.Decimal {
	return value.Div(decimal.NewFromInt(10)).Round(0).Mul(decimal.NewFromInt(10))
}

func formulaVars(amount decimal.Decimal, partial *decimal.Decimal) map[string]decimal.Decimal {
	vars := map[string]decimal.Decimal{"amount": amount}
	if partial != nil {
		vars["partial"] = *partial
	}
	return vars
}
