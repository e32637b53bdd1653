package handler

import (
	"errors"
	"net/http"

	"pledgestack/internal/apierrors"
	"pledgestack/internal/observability"
	"pledgestack/internal/settlement/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.SettlementProcessor
	logger    *observability.Logger
}

func New(processor *processor.SettlementProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TriggerSettlementRequest optionally pins the batch to one stats entry.
type TriggerSettlementRequest struct {
	StatsEntryID *uuid.UUID `json:"stats_entry_id,omitempty"`
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	userID := c.MustGet("User-ID")
	parsed, err := uuid.Parse(userID.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
		return uuid.Nil, false
	}
	return parsed, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrFundraiserNotFound):
		apierrors.NotFound(c, "Fundraiser not found")
	case errors.Is(err, processor.ErrNotAuthorized):
		apierrors.Forbidden(c, "NOT_AUTHORIZED", "You are not authorized to settle this fundraiser")
	case errors.Is(err, processor.ErrWrongFundraiserKind):
		apierrors.BadRequest(c, "WRONG_FUNDRAISER_KIND", "Settlement only applies to performance pledge fundraisers")
	case errors.Is(err, processor.ErrFundraiserCompleted):
		apierrors.Conflict(c, "FUNDRAISER_COMPLETED", "Fundraiser has already been settled")
	case errors.Is(err, processor.ErrPayoutNotConfigured):
		apierrors.Conflict(c, "PAYOUT_NOT_CONFIGURED", "Team has not completed payout onboarding")
	case errors.Is(err, processor.ErrNoStatsEntered):
		apierrors.Conflict(c, "NO_STATS_ENTERED", "No performance stats have been recorded for this fundraiser")
	case errors.Is(err, processor.ErrStatsEntryNotFound):
		apierrors.NotFound(c, "Stats entry not found")
	case errors.Is(err, processor.ErrStatsEntryMismatch):
		apierrors.BadRequest(c, "STATS_ENTRY_MISMATCH", "Stats entry belongs to a different fundraiser")
	case errors.Is(err, processor.ErrSettlementInProgress):
		apierrors.Conflict(c, "SETTLEMENT_IN_PROGRESS", "A settlement batch is already running for this fundraiser")
	default:
		apierrors.InternalError(c, err)
	}
}

// HandleTriggerSettlement runs the settlement batch synchronously and
// returns the per-pledge outcomes.
func (h *Handler) HandleTriggerSettlement(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}

	fundraiserID, err := uuid.Parse(c.Param("fundraiserID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid fundraiser ID format")
		return
	}

	var req TriggerSettlementRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}
	}

	result, err := h.processor.TriggerSettlement(ctx, processor.TriggerSettlementParams{
		FundraiserID: fundraiserID,
		CallerID:     caller,
		StatsEntryID: req.StatsEntryID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
