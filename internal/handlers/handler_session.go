package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/journalsim/internal/apperrors"
	"github.com/freshbites/journalsim/internal/content"
	"github.com/freshbites/journalsim/internal/core/domain"
	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
	"github.com/freshbites/journalsim/internal/dto"
	"github.com/freshbites/journalsim/internal/middleware"
	"github.com/freshbites/journalsim/internal/utils"
)

// sessionHandler handles HTTP requests for the simulation session lifecycle.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(sessionService portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
	}
}

// createSession starts a new simulation for a user. An omitted seed derives
// one from the user ID and the clock.
func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateSessionRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sim, progress, err := h.sessionService.InitializeSession(c.Request.Context(), req.UserID, req.Seed)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSessionResponse(*sim, *progress))
}

// getSession returns the full session state for the UI.
func (h *sessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")

	sim, progress, err := h.sessionService.GetSession(c.Request.Context(), simulationID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve session")
		return
	}

	c.JSON(http.StatusOK, dto.NewSessionResponse(*sim, *progress))
}

// startTransaction activates a transaction and starts its countdown.
func (h *sessionHandler) startTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")
	transactionID := c.Param("transactionID")

	progress, err := h.sessionService.StartTransaction(c.Request.Context(), simulationID, transactionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to start transaction")
		return
	}

	logger.Info("Transaction started", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, progress)
}

// submitAnswer validates the learner's posting and returns the outcome.
func (h *sessionHandler) submitAnswer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")
	transactionID := c.Param("transactionID")

	req := dto.SubmitAnswerRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for SubmitAnswer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entries, err := toJournalEntries(req.Entries)
	if err != nil {
		logger.Warn("Unparseable amount in submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.sessionService.SubmitAnswer(c.Request.Context(), simulationID, transactionID, entries)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit answer")
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// useHint reveals a hint level for the active transaction.
func (h *sessionHandler) useHint(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")
	transactionID := c.Param("transactionID")

	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < int(domain.HintNudge) || level > int(domain.HintSolution) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hint level must be 1, 2 or 3"})
		return
	}

	hint, progress, err := h.sessionService.UseHint(c.Request.Context(), simulationID, transactionID, domain.HintLevel(level))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reveal hint")
		return
	}

	logger.Info("Hint revealed", slog.String("transaction_id", transactionID), slog.Int("level", level))
	c.JSON(http.StatusOK, gin.H{"hint": hint, "progress": progress})
}

// pauseTransaction suspends the countdown of the active transaction.
func (h *sessionHandler) pauseTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")
	transactionID := c.Param("transactionID")

	progress, err := h.sessionService.PauseTransaction(c.Request.Context(), simulationID, transactionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pause transaction")
		return
	}

	c.JSON(http.StatusOK, progress)
}

// resumeTransaction restarts the countdown from the stored remaining time.
func (h *sessionHandler) resumeTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")
	transactionID := c.Param("transactionID")

	progress, err := h.sessionService.ResumeTransaction(c.Request.Context(), simulationID, transactionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resume transaction")
		return
	}

	c.JSON(http.StatusOK, progress)
}

// getSummary returns the end-screen totals, tier and statistics.
func (h *sessionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")

	summary, err := h.sessionService.GetSummary(c.Request.Context(), simulationID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// resetSession stops all timers and discards the stored session.
func (h *sessionHandler) resetSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")

	if err := h.sessionService.ResetSession(c.Request.Context(), simulationID); err != nil {
		respondServiceError(c, logger, err, "Failed to reset session")
		return
	}

	logger.Info("Session reset", slog.String("simulation_id", simulationID))
	c.Status(http.StatusNoContent)
}

// toJournalEntries converts the request rows to domain entries. Amounts
// accept the Dutch decimal comma; unknown account IDs pass through so the
// validator can diagnose them instead of the transport rejecting the row.
func toJournalEntries(rows []dto.JournalEntryRequest) ([]domain.JournalEntry, error) {
	entries := make([]domain.JournalEntry, len(rows))
	for i, row := range rows {
		account, ok := content.AccountByID(row.AccountID)
		if !ok {
			account = domain.Account{AccountID: row.AccountID}
		}
		entry := domain.JournalEntry{Account: account}
		if row.Debit != nil {
			debit, err := utils.ParseAmount(*row.Debit)
			if err != nil {
				return nil, err
			}
			entry.Debit = debit
		}
		if row.Credit != nil {
			credit, err := utils.ParseAmount(*row.Credit)
			if err != nil {
				return nil, err
			}
			entry.Credit = credit
		}
		entries[i] = entry
	}
	return entries, nil
}

// respondServiceError maps service errors to HTTP statuses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrLocked), errors.Is(err, apperrors.ErrCompleted):
		logger.Warn("Conflicting transaction state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// registerSessionRoutes registers the session lifecycle routes
func registerSessionRoutes(group *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	sessions := group.Group("/sessions")
	{
		sessions.POST("/", h.createSession)
		sessions.GET("/:simulationID", h.getSession)
		sessions.DELETE("/:simulationID", h.resetSession)
		sessions.GET("/:simulationID/summary", h.getSummary)

		txns := sessions.Group("/:simulationID/transactions/:transactionID")
		txns.POST("/start", h.startTransaction)
		txns.POST("/answer", h.submitAnswer)
		txns.POST("/hints/:level", h.useHint)
		txns.POST("/pause", h.pauseTransaction)
		txns.POST("/resume", h.resumeTransaction)
	}
}
